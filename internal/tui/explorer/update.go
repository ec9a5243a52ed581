package explorer

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/spark/internal/components/button"
	"github.com/alexisbeaulieu97/spark/internal/icon"
)

// Update handles Bubbletea messages and drives the shell setters.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadMsg:
		m.vm.Load()
		return m, nil
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	in := m.vm.Inputs()
	style := in.Style

	switch {
	case key.Matches(msg, m.keys.quit):
		m.quitting = true
		m.sub.Unsubscribe()
		return m, tea.Quit
	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.nextIntent):
		m.setIntent(m.intent + 1)
	case key.Matches(msg, m.keys.prevIntent):
		m.setIntent(m.intent - 1)
	case key.Matches(msg, m.keys.theme):
		m.setTheme((m.themeIdx + 1) % len(m.themes))
	case key.Matches(msg, m.keys.variant):
		m.vm.SetVariant(next(button.Variants(), style.Variant))
	case key.Matches(msg, m.keys.size):
		m.vm.SetSize(next(button.Sizes(), style.Size))
	case key.Matches(msg, m.keys.shape):
		m.vm.SetShape(next(button.Shapes(), style.Shape))
	case key.Matches(msg, m.keys.alignment):
		m.vm.SetAlignment(next(button.Alignments(), style.Alignment))
	case key.Matches(msg, m.keys.icon):
		if style.Icon.IsPresent() {
			m.vm.RemoveIcon()
		} else {
			m.vm.SetIcon(icon.FromGlyph("→"))
		}
	case key.Matches(msg, m.keys.press):
		m.vm.SetPressed(!in.Interaction.Highlighted)
	case key.Matches(msg, m.keys.disable):
		m.vm.SetDisabled(in.Interaction.Enabled)
	case key.Matches(msg, m.keys.selected):
		m.vm.SetSelected(!in.Interaction.Selected)
	}
	return m, nil
}
