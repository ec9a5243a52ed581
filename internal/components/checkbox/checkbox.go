// Package checkbox resolves checkbox colors for the unselected and selected
// states.
package checkbox

import (
	"fmt"

	"github.com/alexisbeaulieu97/spark/internal/design"
	"github.com/alexisbeaulieu97/spark/internal/palette"
	"github.com/alexisbeaulieu97/spark/internal/state"
	"github.com/alexisbeaulieu97/spark/internal/theme"
	"github.com/alexisbeaulieu97/spark/internal/viewmodel"
)

// Mark is the symbol drawn in a selected box.
type Mark int

const (
	MarkCheckmark Mark = iota
	MarkIndeterminate
)

// Marks lists every mark.
func Marks() []Mark {
	return []Mark{MarkCheckmark, MarkIndeterminate}
}

// String returns the lowercase name used in options and logs.
func (m Mark) String() string {
	switch m {
	case MarkCheckmark:
		return "checkmark"
	case MarkIndeterminate:
		return "indeterminate"
	}
	return fmt.Sprintf("Mark(%d)", int(m))
}

// Glyph is the text form of the mark.
func (m Mark) Glyph() string {
	switch m {
	case MarkCheckmark:
		return "✓"
	case MarkIndeterminate:
		return "−"
	}
	panic(design.Unknown("checkbox mark", m))
}

// ParseMark maps a name back to its Mark.
func ParseMark(name string) (Mark, error) {
	return design.Parse("mark", name, Marks())
}

// Style selects the mark.
type Style struct {
	Mark Mark
}

// Colors are the colors of one checkbox state.
type Colors struct {
	Icon       theme.ColorToken
	Border     theme.ColorToken
	Background theme.ColorToken
}

// WithOpacity dims every color by factor.
func (c Colors) WithOpacity(factor float64) Colors {
	return Colors{
		Icon:       c.Icon.WithOpacity(factor),
		Border:     c.Border.WithOpacity(factor),
		Background: c.Background.WithOpacity(factor),
	}
}

// Swatches names each color for display.
func (c Colors) Swatches() []theme.Swatch {
	return []theme.Swatch{
		{Name: "icon", Token: c.Icon},
		{Name: "border", Token: c.Border},
		{Name: "background", Token: c.Background},
	}
}

// Attributes are the resolved checkbox attributes.
type Attributes struct {
	Colors Colors
	Mark   Mark
}

// WithOpacity dims the colors and keeps the mark.
func (a Attributes) WithOpacity(factor float64) Attributes {
	a.Colors = a.Colors.WithOpacity(factor)
	return a
}

// Swatches names each color for display.
func (a Attributes) Swatches() []theme.Swatch {
	return a.Colors.Swatches()
}

// ColorSets returns the unselected and selected color sets. The pressed
// border is always the basic container color, whatever the intent.
func ColorSets(t *theme.Theme, intent design.Intent) (normal, selected state.Set[Colors]) {
	p := palette.For(t.Colors, intent)
	pressedBorder := t.Colors.Basic.Container

	normal = pressedBorderSet(Colors{Icon: theme.Clear, Border: t.Colors.Base.OnSurface, Background: theme.Clear}, pressedBorder)
	selected = pressedBorderSet(Colors{Icon: p.OnColor, Border: p.Color, Background: p.Color}, pressedBorder)
	return normal, selected
}

func pressedBorderSet(rest Colors, border theme.ColorToken) state.Set[Colors] {
	pressed := rest
	pressed.Border = border
	return state.Set[Colors]{Rest: rest, Pressed: pressed}
}

// Resolve returns the unselected and selected attribute sets.
func Resolve(t *theme.Theme, intent design.Intent, style Style) state.Resolved[Attributes] {
	switch style.Mark {
	case MarkCheckmark, MarkIndeterminate:
		normal, selected := ColorSets(t, intent)
		build := func(c Colors) Attributes { return Attributes{Colors: c, Mark: style.Mark} }
		return state.Selectable(
			state.Set[Attributes]{Rest: build(normal.Rest), Pressed: build(normal.Pressed)},
			state.Set[Attributes]{Rest: build(selected.Rest), Pressed: build(selected.Pressed)},
		)
	}
	panic(design.Unknown("checkbox mark", style.Mark))
}

// ViewModel is the reactive shell of one checkbox.
type ViewModel struct {
	*viewmodel.Shell[Style, Attributes]
}

// NewViewModel creates a checkbox shell.
func NewViewModel(t *theme.Theme, intent design.Intent, mark Mark, opts ...viewmodel.Option) *ViewModel {
	inputs := viewmodel.Inputs[Style]{Theme: t, Intent: intent, Style: Style{Mark: mark}, Interaction: state.Idle()}
	opts = append([]viewmodel.Option{viewmodel.WithName("checkbox")}, opts...)
	return &ViewModel{Shell: viewmodel.New(Resolve, inputs, opts...)}
}

// SetMark replaces the mark.
func (vm *ViewModel) SetMark(m Mark) {
	vm.SetStyle(Style{Mark: m})
}

// Toggle flips the selected flag.
func (vm *ViewModel) Toggle() {
	vm.SetSelected(!vm.Inputs().Interaction.Selected)
}
