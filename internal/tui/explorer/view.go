package explorer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	stageStyle = lipgloss.NewStyle().Padding(1, 2)
)

// View renders the button, its colors and the current inputs.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.vm.Loaded() {
		return "loading…\n"
	}

	in := m.vm.Inputs()
	current := m.session.current

	flags := []string{}
	if in.Interaction.Highlighted {
		flags = append(flags, "pressed")
	}
	if !in.Interaction.Enabled {
		flags = append(flags, "disabled")
	}
	if in.Interaction.Selected {
		flags = append(flags, "selected")
	}
	if len(flags) == 0 {
		flags = append(flags, "rest")
	}

	inputs := fmt.Sprintf("%s %s · %s %s · %s %s · %s %s",
		labelStyle.Render("theme"), in.Theme.Name,
		labelStyle.Render("intent"), in.Intent,
		labelStyle.Render("variant"), in.Style.Variant,
		labelStyle.Render("size"), in.Style.Size,
	)
	status := fmt.Sprintf("%s %s · %s %.2f · %s %d",
		labelStyle.Render("state"), strings.Join(flags, "+"),
		labelStyle.Render("opacity"), current.Opacity,
		labelStyle.Render("updates"), m.session.updates,
	)

	sections := []string{
		titleStyle.Render("spark explorer"),
		inputs,
		status,
		stageStyle.Render(m.renderer.Button(m.label, current.Attributes)),
		m.renderer.Swatches(current.Attributes.Swatches()),
		"",
		m.help.View(m.keys),
	}
	return strings.Join(sections, "\n") + "\n"
}
