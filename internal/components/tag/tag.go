// Package tag resolves the colors of static status tags. Tags give no
// pressed feedback.
package tag

import (
	"fmt"

	"github.com/alexisbeaulieu97/spark/internal/design"
	"github.com/alexisbeaulieu97/spark/internal/palette"
	"github.com/alexisbeaulieu97/spark/internal/state"
	"github.com/alexisbeaulieu97/spark/internal/theme"
	"github.com/alexisbeaulieu97/spark/internal/viewmodel"
)

// Variant selects the tag color scheme.
type Variant int

const (
	VariantFilled Variant = iota
	VariantOutlined
	VariantTinted
)

// Variants lists every variant.
func Variants() []Variant {
	return []Variant{VariantFilled, VariantOutlined, VariantTinted}
}

// String returns the lowercase name used in options and logs.
func (v Variant) String() string {
	switch v {
	case VariantFilled:
		return "filled"
	case VariantOutlined:
		return "outlined"
	case VariantTinted:
		return "tinted"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant maps a name back to its Variant.
func ParseVariant(name string) (Variant, error) {
	return design.Parse("variant", name, Variants())
}

// Style wraps the variant so tags share the shell shape of other families.
type Style struct {
	Variant Variant
}

// Colors are the resolved tag colors.
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

// ColorsFor returns the colors of a tag at rest.
func ColorsFor(t *theme.Theme, intent design.Intent, variant Variant) Colors {
	p := palette.For(t.Colors, intent)

	switch variant {
	case VariantFilled:
		return Colors{Background: p.Color, Border: p.Color, Foreground: p.OnColor}
	case VariantOutlined:
		return Colors{Background: t.Colors.Base.Surface, Border: p.Color, Foreground: p.Color}
	case VariantTinted:
		return Colors{Background: p.Container, Border: p.Container, Foreground: p.OnContainer}
	}
	panic(design.Unknown("tag variant", variant))
}

// Resolve returns a static set: pressed equals rest.
func Resolve(t *theme.Theme, intent design.Intent, style Style) state.Resolved[Colors] {
	return state.Unselectable(state.Static(ColorsFor(t, intent, style.Variant)))
}

// ViewModel is the reactive shell of one tag.
type ViewModel struct {
	*viewmodel.Shell[Style, Colors]
}

// NewViewModel creates a tag shell.
func NewViewModel(t *theme.Theme, intent design.Intent, variant Variant, opts ...viewmodel.Option) *ViewModel {
	inputs := viewmodel.Inputs[Style]{Theme: t, Intent: intent, Style: Style{Variant: variant}, Interaction: state.Idle()}
	opts = append([]viewmodel.Option{viewmodel.WithName("tag")}, opts...)
	return &ViewModel{Shell: viewmodel.New(Resolve, inputs, opts...)}
}

// SetVariant replaces the variant.
func (vm *ViewModel) SetVariant(v Variant) {
	vm.SetStyle(Style{Variant: v})
}
