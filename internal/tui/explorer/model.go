// Package explorer is an interactive terminal view over a button
// view-model. Every key press goes through the shell setters, so the screen
// shows exactly what a subscriber would receive.
package explorer

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/spark/internal/components/button"
	"github.com/alexisbeaulieu97/spark/internal/design"
	"github.com/alexisbeaulieu97/spark/internal/logger"
	"github.com/alexisbeaulieu97/spark/internal/observable"
	"github.com/alexisbeaulieu97/spark/internal/render"
	"github.com/alexisbeaulieu97/spark/internal/state"
	"github.com/alexisbeaulieu97/spark/internal/theme"
	"github.com/alexisbeaulieu97/spark/internal/viewmodel"
)

// Options configures a new explorer.
type Options struct {
	Themes []*theme.Theme
	Label  string
	Output io.Writer
	Logger *logger.Logger
}

type loadMsg struct{}

// session is shared by every copy of the model so the subscription handler
// has somewhere to write.
type session struct {
	current state.Current[button.Attributes]
	updates int
}

// Model is the bubbletea model of the explorer.
type Model struct {
	vm       *button.ViewModel
	sub      observable.Subscription
	session  *session
	themes   []*theme.Theme
	themeIdx int
	intents  []design.Intent
	intent   int
	label    string
	output   io.Writer
	renderer *render.Renderer
	keys     keyMap
	help     help.Model
	log      *logger.Logger
	quitting bool
}

// NewModel builds a deferred button shell. Nothing is resolved until the
// program starts and Init's command arrives.
func NewModel(opts Options) Model {
	themes := opts.Themes
	if len(themes) == 0 {
		themes = []*theme.Theme{theme.Default(), theme.Dark()}
	}
	label := opts.Label
	if label == "" {
		label = "Continue"
	}
	output := opts.Output
	if output == nil {
		output = io.Discard
	}

	log := opts.Logger.Component("explorer")
	vm := button.NewViewModel(themes[0], design.IntentMain, button.DefaultStyle(),
		viewmodel.WithMode(viewmodel.Deferred),
		viewmodel.WithLogger(opts.Logger),
	)

	s := &session{}
	sub := vm.Subscribe(func(c state.Current[button.Attributes]) {
		s.current = c
		s.updates++
	})

	return Model{
		vm:       vm,
		sub:      sub,
		session:  s,
		themes:   themes,
		intents:  design.Intents(),
		label:    label,
		output:   output,
		renderer: render.New(output, themes[0], false),
		keys:     newKeyMap(),
		help:     help.New(),
		log:      log,
	}
}

// Init asks for the first snapshot.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return loadMsg{} }
}

// Updates counts snapshots received through the subscription.
func (m Model) Updates() int { return m.session.updates }

// Current returns the last snapshot received.
func (m Model) Current() state.Current[button.Attributes] { return m.session.current }

// Inputs returns the shell inputs.
func (m Model) Inputs() viewmodel.Inputs[button.Style] { return m.vm.Inputs() }

func next[T comparable](values []T, current T) T {
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}

func (m *Model) setTheme(idx int) {
	m.themeIdx = idx
	t := m.themes[idx]
	m.renderer = render.New(m.output, t, false)
	m.vm.SetTheme(t)
	m.log.Debug("theme switched", "theme", t.Name)
}

func (m *Model) setIntent(idx int) {
	n := len(m.intents)
	m.intent = ((idx % n) + n) % n
	m.vm.SetIntent(m.intents[m.intent])
}
