// Package slider resolves slider track and handle colors.
package slider

import (
	"fmt"
	"math"

	"github.com/alexisbeaulieu97/spark/internal/design"
	"github.com/alexisbeaulieu97/spark/internal/palette"
	"github.com/alexisbeaulieu97/spark/internal/state"
	"github.com/alexisbeaulieu97/spark/internal/theme"
	"github.com/alexisbeaulieu97/spark/internal/viewmodel"
)

// Shape selects square or rounded track ends.
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

// Radius maps a track shape onto the theme radii.
func Radius(r theme.Radii, shape Shape) float64 {
	switch shape {
	case ShapeSquare:
		return r.None
	case ShapeRounded:
		return r.Full
	}
	panic(design.Unknown("shape", shape))
}

// Style holds the slider selectors.
type Style struct {
	Shape Shape
}

// Colors are the resolved slider colors.
type Colors struct {
	Track                 theme.ColorToken
	Indicator             theme.ColorToken
	Handle                theme.ColorToken
	HandleActiveIndicator theme.ColorToken
}

// WithOpacity dims every color by factor.
func (c Colors) WithOpacity(factor float64) Colors {
	return Colors{
		Track:                 c.Track.WithOpacity(factor),
		Indicator:             c.Indicator.WithOpacity(factor),
		Handle:                c.Handle.WithOpacity(factor),
		HandleActiveIndicator: c.HandleActiveIndicator.WithOpacity(factor),
	}
}

// Swatches names each color for display.
func (c Colors) Swatches() []theme.Swatch {
	return []theme.Swatch{
		{Name: "track", Token: c.Track},
		{Name: "indicator", Token: c.Indicator},
		{Name: "handle", Token: c.Handle},
		{Name: "handle_active_indicator", Token: c.HandleActiveIndicator},
	}
}

// Attributes are the resolved slider attributes.
type Attributes struct {
	Colors      Colors
	TrackRadius float64
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

// ColorSet returns the rest colors and the pressed colors, which only swap
// the handle.
func ColorSet(t *theme.Theme, intent design.Intent) state.Set[Colors] {
	p := palette.For(t.Colors, intent)
	rest := Colors{
		Track:                 t.Colors.Base.OnSurface.WithOpacity(t.Dims.Dim4),
		Indicator:             p.Color,
		Handle:                p.Color,
		HandleActiveIndicator: p.Container,
	}
	pressed := rest
	pressed.Handle = p.Pressed
	return state.Set[Colors]{Rest: rest, Pressed: pressed}
}

// Resolve returns a single set: sliders have no selected look.
func Resolve(t *theme.Theme, intent design.Intent, style Style) state.Resolved[Attributes] {
	colors := ColorSet(t, intent)
	radius := Radius(t.Border.Radius, style.Shape)
	return state.Unselectable(state.Set[Attributes]{
		Rest:    Attributes{Colors: colors.Rest, TrackRadius: radius},
		Pressed: Attributes{Colors: colors.Pressed, TrackRadius: radius},
	})
}

// Snap clamps v to [lo, hi] and rounds it to the nearest step. A
// non-positive step only clamps.
func Snap(v, lo, hi, step float64) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	if math.IsNaN(v) {
		return lo
	}
	if step > 0 {
		v = lo + math.Round((v-lo)/step)*step
	}
	return math.Min(math.Max(v, lo), hi)
}

// ViewModel is the reactive shell of one slider.
type ViewModel struct {
	*viewmodel.Shell[Style, Attributes]
}

// NewViewModel creates a slider shell.
func NewViewModel(t *theme.Theme, intent design.Intent, shape Shape, opts ...viewmodel.Option) *ViewModel {
	inputs := viewmodel.Inputs[Style]{Theme: t, Intent: intent, Style: Style{Shape: shape}, Interaction: state.Idle()}
	opts = append([]viewmodel.Option{viewmodel.WithName("slider")}, opts...)
	return &ViewModel{Shell: viewmodel.New(Resolve, inputs, opts...)}
}

// SetShape replaces the shape.
func (vm *ViewModel) SetShape(shape Shape) {
	vm.SetStyle(Style{Shape: shape})
}
