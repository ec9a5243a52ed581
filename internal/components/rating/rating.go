// Package rating resolves star rating colors and metrics and computes
// per-star fill ratios.
package rating

import (
	"fmt"
	"math"

	"github.com/alexisbeaulieu97/spark/internal/design"
	"github.com/alexisbeaulieu97/spark/internal/palette"
	"github.com/alexisbeaulieu97/spark/internal/state"
	"github.com/alexisbeaulieu97/spark/internal/theme"
	"github.com/alexisbeaulieu97/spark/internal/viewmodel"
)

// Size selects the star size and stroke width.
type Size int

const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge
)

// Sizes lists every size.
func Sizes() []Size {
	return []Size{SizeSmall, SizeMedium, SizeLarge}
}

// String returns the lowercase name used in options and logs.
func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	}
	return fmt.Sprintf("Size(%d)", int(s))
}

// ParseSize maps a name back to its Size.
func ParseSize(name string) (Size, error) {
	return design.Parse("size", name, Sizes())
}

// FillMode controls how a fractional value is rounded before filling stars.
type FillMode int

const (
	FillHalf FillMode = iota
	FillFull
	FillExact
)

// FillModes lists every fill mode.
func FillModes() []FillMode {
	return []FillMode{FillHalf, FillFull, FillExact}
}

// String returns the lowercase name used in options and logs.
func (m FillMode) String() string {
	switch m {
	case FillHalf:
		return "half"
	case FillFull:
		return "full"
	case FillExact:
		return "exact"
	}
	return fmt.Sprintf("FillMode(%d)", int(m))
}

// ParseFillMode maps a name back to its FillMode.
func ParseFillMode(name string) (FillMode, error) {
	return design.Parse("fill", name, FillModes())
}

func (m FillMode) round(v float64) float64 {
	switch m {
	case FillHalf:
		return math.Round(v*2) / 2
	case FillFull:
		return math.Round(v)
	case FillExact:
		return v
	}
	panic(design.Unknown("fill mode", m))
}

// Fills returns the fill ratio in [0, 1] of each of count stars for value.
func Fills(value float64, count int, mode FillMode) []float64 {
	if count <= 0 {
		return []float64{}
	}
	if math.IsNaN(value) {
		value = 0
	}
	value = mode.round(math.Min(math.Max(value, 0), float64(count)))

	fills := make([]float64, count)
	for i := range fills {
		fills[i] = math.Min(math.Max(value-float64(i), 0), 1)
	}
	return fills
}

// Style holds the rating selectors.
type Style struct {
	Size Size
}

// Colors are the resolved rating colors.
type Colors struct {
	Fill   theme.ColorToken
	Stroke theme.ColorToken
}

// WithOpacity dims every color by factor.
func (c Colors) WithOpacity(factor float64) Colors {
	return Colors{Fill: c.Fill.WithOpacity(factor), Stroke: c.Stroke.WithOpacity(factor)}
}

// Swatches names each color for display.
func (c Colors) Swatches() []theme.Swatch {
	return []theme.Swatch{
		{Name: "fill", Token: c.Fill},
		{Name: "stroke", Token: c.Stroke},
	}
}

// Attributes are the resolved rating attributes.
type Attributes struct {
	Colors      Colors
	StarSize    float64
	BorderWidth float64
	Spacing     float64
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

// Metrics returns the star size and border width of size.
func Metrics(size Size) (star, border float64) {
	switch size {
	case SizeSmall:
		return 12, 1
	case SizeMedium:
		return 20, 2
	case SizeLarge:
		return 40, 3
	}
	panic(design.Unknown("rating size", size))
}

// ColorSet returns the rest colors and the pressed colors, which only swap the fill.
func ColorSet(t *theme.Theme, intent design.Intent) state.Set[Colors] {
	p := palette.For(t.Colors, intent)
	rest := Colors{Fill: p.Color, Stroke: t.Colors.Base.OnSurface.WithOpacity(t.Dims.Dim3)}
	pressed := rest
	pressed.Fill = p.Pressed
	return state.Set[Colors]{Rest: rest, Pressed: pressed}
}

// Resolve returns a single set: ratings have no selected look.
func Resolve(t *theme.Theme, intent design.Intent, style Style) state.Resolved[Attributes] {
	colors := ColorSet(t, intent)
	star, border := Metrics(style.Size)
	build := func(c Colors) Attributes {
		return Attributes{Colors: c, StarSize: star, BorderWidth: border, Spacing: t.Spacing.Small}
	}
	return state.Unselectable(state.Set[Attributes]{Rest: build(colors.Rest), Pressed: build(colors.Pressed)})
}

// ViewModel is the reactive shell of one rating.
type ViewModel struct {
	*viewmodel.Shell[Style, Attributes]
}

// NewViewModel creates a rating shell.
func NewViewModel(t *theme.Theme, intent design.Intent, size Size, opts ...viewmodel.Option) *ViewModel {
	inputs := viewmodel.Inputs[Style]{Theme: t, Intent: intent, Style: Style{Size: size}, Interaction: state.Idle()}
	opts = append([]viewmodel.Option{viewmodel.WithName("rating")}, opts...)
	return &ViewModel{Shell: viewmodel.New(Resolve, inputs, opts...)}
}

// SetSize replaces the size.
func (vm *ViewModel) SetSize(size Size) {
	vm.SetStyle(Style{Size: size})
}
