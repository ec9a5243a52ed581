// Package progressbar resolves determinate progress bar colors.
package progressbar

import (
	"fmt"
	"math"

	"github.com/alexisbeaulieu97/spark/internal/design"
	"github.com/alexisbeaulieu97/spark/internal/palette"
	"github.com/alexisbeaulieu97/spark/internal/state"
	"github.com/alexisbeaulieu97/spark/internal/theme"
	"github.com/alexisbeaulieu97/spark/internal/viewmodel"
)

// Shape selects square or rounded bar ends.
type Shape int

const (
	ShapeSquare Shape = iota
	ShapeRounded
)

// Shapes lists every shape.
func Shapes() []Shape {
	return []Shape{ShapeSquare, ShapeRounded}
}

// String returns the lowercase name used in options and logs.
func (s Shape) String() string {
	switch s {
	case ShapeSquare:
		return "square"
	case ShapeRounded:
		return "rounded"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// ParseShape maps a name back to its Shape.
func ParseShape(name string) (Shape, error) {
	return design.Parse("shape", name, Shapes())
}

// DisplayStyle selects whether a value label is drawn under the bar.
type DisplayStyle int

const (
	DisplayDefault DisplayStyle = iota
	DisplayLabeled
)

// DisplayStyles lists every display style.
func DisplayStyles() []DisplayStyle {
	return []DisplayStyle{DisplayDefault, DisplayLabeled}
}

// HasBottomSpace reports whether room is reserved for the label.
func (d DisplayStyle) HasBottomSpace() bool {
	switch d {
	case DisplayDefault:
		return false
	case DisplayLabeled:
		return true
	}
	panic(design.Unknown("display style", d))
}

// String returns the lowercase name used in options and logs.
func (d DisplayStyle) String() string {
	switch d {
	case DisplayDefault:
		return "default"
	case DisplayLabeled:
		return "labeled"
	}
	return fmt.Sprintf("DisplayStyle(%d)", int(d))
}

// ParseDisplayStyle maps a name back to its DisplayStyle.
func ParseDisplayStyle(name string) (DisplayStyle, error) {
	return design.Parse("display", name, DisplayStyles())
}

// Style holds the progress bar selectors.
type Style struct {
	Shape   Shape
	Display DisplayStyle
}

// Colors are the resolved progress bar colors.
type Colors struct {
	Track     theme.ColorToken
	Indicator theme.ColorToken
}

// WithOpacity dims every color by factor.
func (c Colors) WithOpacity(factor float64) Colors {
	return Colors{Track: c.Track.WithOpacity(factor), Indicator: c.Indicator.WithOpacity(factor)}
}

// Swatches names each color for display.
func (c Colors) Swatches() []theme.Swatch {
	return []theme.Swatch{
		{Name: "track", Token: c.Track},
		{Name: "indicator", Token: c.Indicator},
	}
}

// Attributes are the resolved progress bar attributes.
type Attributes struct {
	Colors       Colors
	CornerRadius float64
	BottomSpace  float64
}

// WithOpacity dims the colors and keeps the metrics.
func (a Attributes) WithOpacity(factor float64) Attributes {
	a.Colors = a.Colors.WithOpacity(factor)
	return a
}

// Swatches names each color for display.
func (a Attributes) Swatches() []theme.Swatch {
	return a.Colors.Swatches()
}

// ColorsFor returns the track and indicator colors for intent.
func ColorsFor(t *theme.Theme, intent design.Intent) Colors {
	p := palette.For(t.Colors, intent)
	return Colors{Track: p.Container, Indicator: p.Color}
}

func radius(r theme.Radii, shape Shape) float64 {
	switch shape {
	case ShapeSquare:
		return r.None
	case ShapeRounded:
		return r.Full
	}
	panic(design.Unknown("shape", shape))
}

// Resolve returns a static set; a progress bar has no pressed look.
func Resolve(t *theme.Theme, intent design.Intent, style Style) state.Resolved[Attributes] {
	attrs := Attributes{
		Colors:       ColorsFor(t, intent),
		CornerRadius: radius(t.Border.Radius, style.Shape),
	}
	if style.Display.HasBottomSpace() {
		attrs.BottomSpace = t.Spacing.Small
	}
	return state.Unselectable(state.Static(attrs))
}

// ClampValue limits a progress fraction to [0, 1]. NaN reads as no progress.
func ClampValue(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Min(math.Max(v, 0), 1)
}

// Label formats a clamped fraction as a whole percentage.
func Label(v float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(ClampValue(v)*100)))
}

// ViewModel is the reactive shell of one progress bar.
type ViewModel struct {
	*viewmodel.Shell[Style, Attributes]
}

// NewViewModel creates a progress bar shell.
func NewViewModel(t *theme.Theme, intent design.Intent, style Style, opts ...viewmodel.Option) *ViewModel {
	inputs := viewmodel.Inputs[Style]{Theme: t, Intent: intent, Style: style, Interaction: state.Idle()}
	opts = append([]viewmodel.Option{viewmodel.WithName("progressbar")}, opts...)
	return &ViewModel{Shell: viewmodel.New(Resolve, inputs, opts...)}
}

// SetShape replaces the shape.
func (vm *ViewModel) SetShape(shape Shape) {
	style := vm.Inputs().Style
	style.Shape = shape
	vm.SetStyle(style)
}

// SetDisplay replaces the display style.
func (vm *ViewModel) SetDisplay(d DisplayStyle) {
	style := vm.Inputs().Style
	style.Display = d
	vm.SetStyle(style)
}
