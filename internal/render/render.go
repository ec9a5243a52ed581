// Package render draws resolved attributes in a terminal with lipgloss.
// Terminals cannot blend, so translucent tokens are flattened over the theme
// background first.
package render

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/alexisbeaulieu97/spark/internal/catalog"
	"github.com/alexisbeaulieu97/spark/internal/components/button"
	"github.com/alexisbeaulieu97/spark/internal/icon"
	"github.com/alexisbeaulieu97/spark/internal/theme"
)

// pointsPerCell converts layout points into terminal cells.
const pointsPerCell = 8

// Renderer draws with one theme onto one output.
type Renderer struct {
	theme *theme.Theme
	lg    *lipgloss.Renderer
	plain bool
}

// New creates a renderer. plain disables colors and blocks, for output that
// is not a terminal.
func New(w io.Writer, t *theme.Theme, plain bool) *Renderer {
	return &Renderer{theme: t, lg: lipgloss.NewRenderer(w), plain: plain}
}

// Plain reports whether the renderer writes text only.
func (r *Renderer) Plain() bool { return r.plain }

// Color flattens token over the theme background.
func (r *Renderer) Color(token theme.ColorToken) lipgloss.Color {
	return lipgloss.Color(theme.Flatten(token, r.theme.Colors.Base.Background).Hex())
}

// Font maps a typography token onto the only weight terminals know.
func (r *Renderer) Font(f theme.Font) lipgloss.Style {
	return r.lg.NewStyle().Bold(f.Weight.IsBold())
}

// Swatch renders one named color as a block followed by its value.
func (r *Renderer) Swatch(sw theme.Swatch, width int) string {
	value := theme.ValueOf(sw.Token).String()
	name := fmt.Sprintf("%-*s", width, sw.Name)
	if r.plain {
		return name + "  " + value
	}
	block := r.lg.NewStyle().Background(r.Color(sw.Token)).Render("    ")
	return name + "  " + block + " " + value
}

// Swatches renders a column of swatches aligned on the longest name.
func (r *Renderer) Swatches(swatches []theme.Swatch) string {
	width := lo.Max(lo.Map(swatches, func(sw theme.Swatch, _ int) int { return len(sw.Name) }))
	lines := lo.Map(swatches, func(sw theme.Swatch, _ int) string { return r.Swatch(sw, width) })
	return strings.Join(lines, "\n")
}

// Snapshot renders a titled snapshot with its colors and metrics.
func (r *Renderer) Snapshot(title string, snap catalog.Snapshot) string {
	heading := title
	if !r.plain {
		heading = r.Font(r.theme.Typography.Subhead).Render(title)
	}

	status := fmt.Sprintf("opacity %.2f", snap.Opacity)
	if !snap.Interactive {
		status += ", not interactive"
	}

	sections := []string{heading + "  " + status, r.Swatches(snap.Swatches)}
	if len(snap.Metrics) > 0 {
		keys := lo.Keys(snap.Metrics)
		slices.Sort(keys)
		metrics := lo.Map(keys, func(k string, _ int) string {
			return fmt.Sprintf("%s=%g", k, snap.Metrics[k])
		})
		sections = append(sections, strings.Join(metrics, " "))
	}
	return strings.Join(sections, "\n")
}

// Button renders a button label with its colors, padding, border and icon.
func (r *Renderer) Button(label string, a button.Attributes) string {
	content := label
	if i, ok := a.Icon.Get(); ok {
		glyph := icon.Describe(i)
		if a.Alignment.IsTrailingImage() {
			content = label + " " + glyph
		} else {
			content = glyph + " " + label
		}
	}

	if r.plain {
		return "[ " + content + " ]"
	}

	c, g := a.Colors, a.Geometry
	style := r.Font(r.theme.Typography.Body1Highlight).
		Foreground(r.Color(c.Foreground)).
		Background(r.Color(c.Background)).
		Padding(0, cells(g.HorizontalPadding))
	if g.BorderWidth > 0 {
		style = style.Border(borderFor(g.CornerRadius)).BorderForeground(r.Color(c.Border))
	}
	return style.Render(content)
}

func cells(points float64) int {
	if points <= 0 {
		return 0
	}
	return max(1, int(math.Round(points/pointsPerCell)))
}

func borderFor(radius float64) lipgloss.Border {
	if radius > 0 {
		return lipgloss.RoundedBorder()
	}
	return lipgloss.NormalBorder()
}
