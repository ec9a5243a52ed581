// Package chip resolves selectable filter chips.
package chip

import (
	"fmt"

	"github.com/alexisbeaulieu97/spark/internal/design"
	"github.com/alexisbeaulieu97/spark/internal/palette"
	"github.com/alexisbeaulieu97/spark/internal/state"
	"github.com/alexisbeaulieu97/spark/internal/theme"
	"github.com/alexisbeaulieu97/spark/internal/viewmodel"
)

// Variant selects the chip outline treatment.
type Variant int

const (
	VariantOutlined Variant = iota
	VariantTinted
	VariantDashed
)

// Variants lists every variant.
func Variants() []Variant {
	return []Variant{VariantOutlined, VariantTinted, VariantDashed}
}

// IsDashed reports whether the border is drawn dashed.
func (v Variant) IsDashed() bool {
	return v == VariantDashed
}

// String returns the lowercase name used in options and logs.
func (v Variant) String() string {
	switch v {
	case VariantOutlined:
		return "outlined"
	case VariantTinted:
		return "tinted"
	case VariantDashed:
		return "dashed"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant maps a name back to its Variant.
func ParseVariant(name string) (Variant, error) {
	return design.Parse("variant", name, Variants())
}

// Style holds the chip selectors.
type Style struct {
	Variant Variant
}

// Colors are the resolved chip colors.
type Colors struct {
	Background theme.ColorToken
	Border     theme.ColorToken
	Foreground theme.ColorToken
}

// WithOpacity dims every color by factor.
func (c Colors) WithOpacity(factor float64) Colors {
	return Colors{
		Background: c.Background.WithOpacity(factor),
		Border:     c.Border.WithOpacity(factor),
		Foreground: c.Foreground.WithOpacity(factor),
	}
}

// Swatches names each color for display.
func (c Colors) Swatches() []theme.Swatch {
	return []theme.Swatch{
		{Name: "background", Token: c.Background},
		{Name: "border", Token: c.Border},
		{Name: "foreground", Token: c.Foreground},
	}
}

// Attributes are the resolved chip attributes.
type Attributes struct {
	Colors       Colors
	Dashed       bool
	CornerRadius float64
	BorderWidth  float64
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

// ColorSets returns the normal and selected color sets of variant.
func ColorSets(t *theme.Theme, intent design.Intent, variant Variant) (normal, selected state.Set[Colors]) {
	p := palette.For(t.Colors, intent)
	line := func() (state.Set[Colors], state.Set[Colors]) {
		normal := pressedBackground(Colors{Background: theme.Clear, Border: p.Color, Foreground: p.Color}, p.Color.WithOpacity(t.Dims.Dim5))
		selected := pressedBackground(Colors{Background: p.Container, Border: p.Color, Foreground: p.OnContainer}, p.ContainerPressed)
		return normal, selected
	}

	switch variant {
	case VariantOutlined:
		return line()
	case VariantDashed:
		return line()
	case VariantTinted:
		normal = pressedBackground(Colors{Background: p.Container, Border: p.Container, Foreground: p.OnContainer}, p.ContainerPressed)
		selected = pressedBackground(Colors{Background: p.Color, Border: p.Color, Foreground: p.OnColor}, p.Pressed)
		return normal, selected
	}
	panic(design.Unknown("chip variant", variant))
}

func pressedBackground(rest Colors, background theme.ColorToken) state.Set[Colors] {
	pressed := rest
	pressed.Background = background
	return state.Set[Colors]{Rest: rest, Pressed: pressed}
}

// Resolve returns the normal and selected sets with chip geometry.
func Resolve(t *theme.Theme, intent design.Intent, style Style) state.Resolved[Attributes] {
	normal, selected := ColorSets(t, intent, style.Variant)
	build := func(c Colors) Attributes {
		return Attributes{
			Colors:       c,
			Dashed:       style.Variant.IsDashed(),
			CornerRadius: t.Border.Radius.Full,
			BorderWidth:  t.Border.Width.Small,
		}
	}
	return state.Selectable(
		state.Set[Attributes]{Rest: build(normal.Rest), Pressed: build(normal.Pressed)},
		state.Set[Attributes]{Rest: build(selected.Rest), Pressed: build(selected.Pressed)},
	)
}

// ViewModel is the reactive shell of one chip.
type ViewModel struct {
	*viewmodel.Shell[Style, Attributes]
}

// NewViewModel creates a chip shell.
func NewViewModel(t *theme.Theme, intent design.Intent, variant Variant, opts ...viewmodel.Option) *ViewModel {
	inputs := viewmodel.Inputs[Style]{Theme: t, Intent: intent, Style: Style{Variant: variant}, Interaction: state.Idle()}
	opts = append([]viewmodel.Option{viewmodel.WithName("chip")}, opts...)
	return &ViewModel{Shell: viewmodel.New(Resolve, inputs, opts...)}
}

// SetVariant replaces the variant.
func (vm *ViewModel) SetVariant(v Variant) {
	vm.SetStyle(Style{Variant: v})
}

// Toggle flips the selected flag, the way a tap on a filter chip does.
func (vm *ViewModel) Toggle() {
	vm.SetSelected(!vm.Inputs().Interaction.Selected)
}
