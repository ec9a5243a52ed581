// Package viewmodel wraps a resolution use-case with mutable inputs and
// republishes the current attributes whenever an input changes.
//
// A shell is single-threaded: call setters and receive notifications on
// the same logical thread.
package viewmodel

import (
	"fmt"

	"github.com/alexisbeaulieu97/spark/internal/design"
	"github.com/alexisbeaulieu97/spark/internal/logger"
	"github.com/alexisbeaulieu97/spark/internal/observable"
	"github.com/alexisbeaulieu97/spark/internal/state"
	"github.com/alexisbeaulieu97/spark/internal/theme"
	spkerrors "github.com/alexisbeaulieu97/spark/pkg/errors"
)

// Mode selects when the first snapshot is computed.
type Mode int

const (
	// Eager computes and publishes during New, for consumers that read the
	// value synchronously on first render.
	Eager Mode = iota
	// Deferred waits for Load, for consumers that must finish building
	// before they can receive values.
	Deferred
)

func (m Mode) String() string {
	switch m {
	case Eager:
		return "eager"
	case Deferred:
		return "deferred"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Resolver is a family's resolution use-case. It must be pure.
type Resolver[S comparable, A any] func(t *theme.Theme, intent design.Intent, style S) state.Resolved[A]

// Inputs are the only mutable fields of a shell.
type Inputs[S comparable] struct {
	Theme       *theme.Theme
	Intent      design.Intent
	Style       S
	Interaction state.Interaction
}

type options struct {
	mode Mode
	log  *logger.Logger
	name string
}

// Option configures a Shell.
type Option func(*options)

// WithMode sets the loading mode. The default is Eager.
func WithMode(mode Mode) Option {
	return func(o *options) { o.mode = mode }
}

// WithLogger enables a debug entry per publication.
func WithLogger(log *logger.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithName sets the component name used in log entries.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// Shell holds the inputs of one component instance and publishes a
// state.Current snapshot on every effective change.
type Shell[S comparable, A state.Dimmable[A]] struct {
	resolve  Resolver[S, A]
	inputs   Inputs[S]
	resolved state.Resolved[A]
	subject  *observable.Subject[state.Current[A]]
	mode     Mode
	log      *logger.Logger

	loaded   bool
	stale    bool
	batching int
	pending  bool
}

// New creates a shell. In Eager mode the first snapshot is published
// before New returns; in Deferred mode nothing is computed until Load.
func New[S comparable, A state.Dimmable[A]](resolve Resolver[S, A], inputs Inputs[S], opts ...Option) *Shell[S, A] {
	if resolve == nil {
		spkerrors.Violation("viewmodel: nil resolver")
	}
	if inputs.Theme == nil {
		spkerrors.Violation("viewmodel: nil theme")
	}

	cfg := options{mode: Eager, name: "component"}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Shell[S, A]{
		resolve: resolve,
		inputs:  inputs,
		subject: observable.NewSubject[state.Current[A]](),
		mode:    cfg.mode,
		log:     cfg.log.Component(cfg.name),
		stale:   true,
	}

	if cfg.mode == Eager {
		s.Load()
	}
	return s
}

// Load computes and publishes the first snapshot. Later calls do nothing.
func (s *Shell[S, A]) Load() {
	if s.loaded {
		return
	}
	s.loaded = true
	s.refresh()
}

// Loaded reports whether the first snapshot has been published.
func (s *Shell[S, A]) Loaded() bool { return s.loaded }

// Mode returns the loading mode.
func (s *Shell[S, A]) Mode() Mode { return s.mode }

// Inputs returns a copy of the current inputs.
func (s *Shell[S, A]) Inputs() Inputs[S] { return s.inputs }

// Current returns the latest published snapshot.
func (s *Shell[S, A]) Current() (state.Current[A], bool) {
	return s.subject.Latest()
}

// Subscribe registers handler for every later publication.
func (s *Shell[S, A]) Subscribe(handler func(state.Current[A])) observable.Subscription {
	return s.subject.Subscribe(handler)
}

// Publications counts snapshots published so far.
func (s *Shell[S, A]) Publications() int {
	return s.subject.Published()
}

// SetTheme replaces the theme. Themes equal by value are ignored.
func (s *Shell[S, A]) SetTheme(t *theme.Theme) {
	if t == nil {
		spkerrors.Violation("viewmodel: nil theme")
	}
	if s.inputs.Theme.Equal(t) {
		return
	}
	s.inputs.Theme = t
	s.changed(true)
}

// SetIntent replaces the intent.
func (s *Shell[S, A]) SetIntent(intent design.Intent) {
	if s.inputs.Intent == intent {
		return
	}
	s.inputs.Intent = intent
	s.changed(true)
}

// SetStyle replaces the family style (variant, size, shape...).
func (s *Shell[S, A]) SetStyle(style S) {
	if s.inputs.Style == style {
		return
	}
	s.inputs.Style = style
	s.changed(true)
}

// SetPressed sets the highlighted flag.
func (s *Shell[S, A]) SetPressed(pressed bool) {
	if s.inputs.Interaction.Highlighted == pressed {
		return
	}
	s.inputs.Interaction.Highlighted = pressed
	s.changed(false)
}

// SetDisabled clears or sets the enabled flag.
func (s *Shell[S, A]) SetDisabled(disabled bool) {
	if s.inputs.Interaction.Enabled == !disabled {
		return
	}
	s.inputs.Interaction.Enabled = !disabled
	s.changed(false)
}

// SetSelected sets the selected flag.
func (s *Shell[S, A]) SetSelected(selected bool) {
	if s.inputs.Interaction.Selected == selected {
		return
	}
	s.inputs.Interaction.Selected = selected
	s.changed(false)
}

// Batch runs fn and publishes at most once afterwards, however many
// setters fn calls.
func (s *Shell[S, A]) Batch(fn func()) {
	s.batching++
	defer func() {
		s.batching--
		if s.batching == 0 && s.pending {
			s.pending = false
			s.refresh()
		}
	}()
	fn()
}

// changed records an input change. Table changes re-run the resolver;
// interaction changes only re-apply the state machine.
func (s *Shell[S, A]) changed(table bool) {
	if table {
		s.stale = true
	}
	if !s.loaded {
		return
	}
	if s.batching > 0 {
		s.pending = true
		return
	}
	s.refresh()
}

func (s *Shell[S, A]) refresh() {
	if s.stale {
		s.resolved = s.resolve(s.inputs.Theme, s.inputs.Intent, s.inputs.Style)
		s.stale = false
	}

	current := state.Resolve(s.resolved, s.inputs.Interaction, s.inputs.Theme.Dims)
	s.log.Debug("attributes published",
		"theme", s.inputs.Theme.Name,
		"intent", s.inputs.Intent.String(),
		"style", fmt.Sprintf("%+v", s.inputs.Style),
		"enabled", s.inputs.Interaction.Enabled,
		"highlighted", s.inputs.Interaction.Highlighted,
		"selected", s.inputs.Interaction.Selected,
		"opacity", current.Opacity,
	)
	s.subject.Publish(current)
}
