package button

import (
	"github.com/samber/mo"

	"github.com/alexisbeaulieu97/spark/internal/design"
	"github.com/alexisbeaulieu97/spark/internal/icon"
	"github.com/alexisbeaulieu97/spark/internal/state"
	"github.com/alexisbeaulieu97/spark/internal/theme"
	"github.com/alexisbeaulieu97/spark/internal/viewmodel"
)

// ViewModel is a button shell with per-field style setters.
type ViewModel struct {
	*viewmodel.Shell[Style, Attributes]
}

// NewViewModel creates an idle button shell.
func NewViewModel(t *theme.Theme, intent design.Intent, style Style, opts ...viewmodel.Option) *ViewModel {
	inputs := viewmodel.Inputs[Style]{Theme: t, Intent: intent, Style: style, Interaction: state.Idle()}
	opts = append([]viewmodel.Option{viewmodel.WithName("button")}, opts...)
	return &ViewModel{Shell: viewmodel.New(Resolve, inputs, opts...)}
}

func (vm *ViewModel) update(fn func(*Style)) {
	style := vm.Inputs().Style
	fn(&style)
	vm.SetStyle(style)
}

// SetVariant replaces the variant.
func (vm *ViewModel) SetVariant(v Variant) {
	vm.update(func(s *Style) { s.Variant = v })
}

// SetSize replaces the size.
func (vm *ViewModel) SetSize(size Size) {
	vm.update(func(s *Style) { s.Size = size })
}

// SetShape replaces the shape.
func (vm *ViewModel) SetShape(shape Shape) {
	vm.update(func(s *Style) { s.Shape = shape })
}

// SetAlignment replaces the alignment.
func (vm *ViewModel) SetAlignment(a Alignment) {
	vm.update(func(s *Style) { s.Alignment = a })
}

// SetIcon shows i next to the label.
func (vm *ViewModel) SetIcon(i icon.Icon) {
	vm.update(func(s *Style) { s.Icon = mo.Some(i) })
}

// RemoveIcon leaves the label alone.
func (vm *ViewModel) RemoveIcon() {
	vm.update(func(s *Style) { s.Icon = mo.None[icon.Icon]() })
}
