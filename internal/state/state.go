// Package state layers interaction state on top of resolved "at rest"
// attributes.
//
// Precedence is fixed: the selected set replaces the normal set first, then
// a disabled component is dimmed from its rest colors, then a highlighted
// component shows its pressed colors. Disabled always wins over pressed.
package state

import (
	"github.com/samber/mo"

	"github.com/alexisbeaulieu97/spark/internal/theme"
)

// Interaction is the mutable input driven by gesture and focus handling.
type Interaction struct {
	Enabled     bool
	Highlighted bool
	Selected    bool
}

// Idle is an enabled, untouched, unselected component.
func Idle() Interaction {
	return Interaction{Enabled: true}
}

// Dimmable is implemented by every family's attribute type.
// WithOpacity must multiply every color channel exactly once.
type Dimmable[A any] interface {
	WithOpacity(factor float64) A
}

// Set holds the rest and pressed attributes of one selection state.
type Set[A any] struct {
	Rest    A
	Pressed A
}

// Static returns a set whose pressed attributes equal the rest ones, for
// families that give no pressed feedback.
func Static[A any](rest A) Set[A] {
	return Set[A]{Rest: rest, Pressed: rest}
}

// Resolved is the output of a resolution use-case: everything the state
// machine needs to switch states without touching the theme again.
type Resolved[A any] struct {
	Normal   Set[A]
	Selected mo.Option[Set[A]]
}

// Unselectable wraps a set for families without a selected look.
func Unselectable[A any](normal Set[A]) Resolved[A] {
	return Resolved[A]{Normal: normal, Selected: mo.None[Set[A]]()}
}

// Selectable wraps the normal and selected sets.
func Selectable[A any](normal, selected Set[A]) Resolved[A] {
	return Resolved[A]{Normal: normal, Selected: mo.Some(selected)}
}

// Current is the attribute snapshot for one interaction state.
// Opacity reports the multiplier already folded into Attributes; consumers
// must not apply it a second time.
type Current[A any] struct {
	Attributes  A
	Opacity     float64
	Interactive bool
}

// Resolve picks the attributes for s.
func Resolve[A Dimmable[A]](r Resolved[A], s Interaction, dims theme.Dims) Current[A] {
	set := r.Normal
	if s.Selected {
		if selected, ok := r.Selected.Get(); ok {
			set = selected
		}
	}

	if !s.Enabled {
		return Current[A]{
			Attributes:  set.Rest.WithOpacity(dims.Dim3),
			Opacity:     dims.Dim3,
			Interactive: false,
		}
	}

	if s.Highlighted {
		return Current[A]{Attributes: set.Pressed, Opacity: dims.None(), Interactive: true}
	}

	return Current[A]{Attributes: set.Rest, Opacity: dims.None(), Interactive: true}
}
