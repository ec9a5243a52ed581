// Package button resolves button colors and geometry from a theme, an
// intent and a style.
package button

import (
	"github.com/samber/mo"

	"github.com/alexisbeaulieu97/spark/internal/design"
	"github.com/alexisbeaulieu97/spark/internal/icon"
	"github.com/alexisbeaulieu97/spark/internal/palette"
	"github.com/alexisbeaulieu97/spark/internal/state"
	"github.com/alexisbeaulieu97/spark/internal/theme"
)

// Style is everything about a button that is not intent or interaction.
type Style struct {
	Variant   Variant
	Size      Size
	Shape     Shape
	Alignment Alignment
	Icon      mo.Option[icon.Icon]
}

// DefaultStyle is a medium, rounded, filled button without an icon.
func DefaultStyle() Style {
	return Style{
		Variant:   VariantFilled,
		Size:      SizeMedium,
		Shape:     ShapeRounded,
		Alignment: AlignmentLeadingImage,
		Icon:      mo.None[icon.Icon](),
	}
}

// Colors are the resolved button colors.
type Colors struct {
	Foreground theme.ColorToken
	Background theme.ColorToken
	Border     theme.ColorToken
}

// WithOpacity multiplies every color by factor.
func (c Colors) WithOpacity(factor float64) Colors {
	return Colors{
		Foreground: c.Foreground.WithOpacity(factor),
		Background: c.Background.WithOpacity(factor),
		Border:     c.Border.WithOpacity(factor),
	}
}

// Swatches names each color for display.
func (c Colors) Swatches() []theme.Swatch {
	return []theme.Swatch{
		{Name: "foreground", Token: c.Foreground},
		{Name: "background", Token: c.Background},
		{Name: "border", Token: c.Border},
	}
}

// Geometry holds the size-dependent metrics in points.
type Geometry struct {
	Height            float64
	HorizontalPadding float64
	IconSize          float64
	IconSpacing       float64
	CornerRadius      float64
	BorderWidth       float64
}

// Attributes is what a renderer needs to draw one button state.
type Attributes struct {
	Colors    Colors
	Geometry  Geometry
	Icon      mo.Option[icon.Icon]
	Alignment Alignment
}

// WithOpacity dims the colors; geometry and icon are untouched.
func (a Attributes) WithOpacity(factor float64) Attributes {
	a.Colors = a.Colors.WithOpacity(factor)
	return a
}

// Swatches lists the button colors.
func (a Attributes) Swatches() []theme.Swatch {
	return a.Colors.Swatches()
}

// Resolve computes the rest and pressed attributes of a button.
func Resolve(t *theme.Theme, intent design.Intent, style Style) state.Resolved[Attributes] {
	colors := ColorSet(t, intent, style.Variant)
	geometry := GeometryFor(t, style)

	build := func(c Colors) Attributes {
		return Attributes{Colors: c, Geometry: geometry, Icon: style.Icon, Alignment: style.Alignment}
	}
	return state.Unselectable(state.Set[Attributes]{Rest: build(colors.Rest), Pressed: build(colors.Pressed)})
}

// ColorSet returns the rest and pressed colors of variant.
func ColorSet(t *theme.Theme, intent design.Intent, variant Variant) state.Set[Colors] {
	p := palette.For(t.Colors, intent)
	base := t.Colors.Base

	switch variant {
	case VariantFilled:
		rest := Colors{Foreground: p.OnColor, Background: p.Color, Border: theme.Clear}
		return pressedBackground(rest, p.Pressed)
	case VariantOutlined:
		rest := Colors{Foreground: p.Color, Background: base.Surface, Border: p.Color}
		return pressedBackground(rest, p.Color.WithOpacity(t.Dims.Dim5))
	case VariantTinted:
		rest := Colors{Foreground: p.OnContainer, Background: p.Container, Border: theme.Clear}
		return pressedBackground(rest, p.ContainerPressed)
	case VariantGhost:
		rest := Colors{Foreground: p.Color, Background: theme.Clear, Border: theme.Clear}
		return pressedBackground(rest, p.Color.WithOpacity(t.Dims.Dim5))
	case VariantContrast:
		rest := Colors{Foreground: p.Color, Background: base.Surface, Border: theme.Clear}
		return pressedBackground(rest, t.Colors.States.Surface.Pressed)
	}
	panic(design.Unknown("button variant", variant))
}

func pressedBackground(rest Colors, background theme.ColorToken) state.Set[Colors] {
	pressed := rest
	pressed.Background = background
	return state.Set[Colors]{Rest: rest, Pressed: pressed}
}

// GeometryFor returns the metrics of style in t.
func GeometryFor(t *theme.Theme, style Style) Geometry {
	g := Geometry{
		IconSpacing:  t.Spacing.Medium,
		CornerRadius: cornerRadius(t.Border.Radius, style.Shape),
		BorderWidth:  t.Border.Width.None,
	}
	if style.Variant == VariantOutlined {
		g.BorderWidth = t.Border.Width.Small
	}

	g.Height, g.HorizontalPadding, g.IconSize = sizeMetrics(t.Spacing, style.Size)
	return g
}

func sizeMetrics(s theme.Spacing, size Size) (height, padding, iconSize float64) {
	switch size {
	case SizeSmall:
		return 32, s.Medium, 16
	case SizeMedium:
		return 44, s.Large, 16
	case SizeLarge:
		return 56, s.XLarge, 24
	}
	panic(design.Unknown("button size", size))
}

func cornerRadius(r theme.Radii, shape Shape) float64 {
	switch shape {
	case ShapeSquare:
		return r.None
	case ShapeRounded:
		return r.Large
	case ShapePill:
		return r.Full
	}
	panic(design.Unknown("button shape", shape))
}
