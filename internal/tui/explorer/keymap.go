package explorer

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	nextIntent key.Binding
	prevIntent key.Binding
	variant    key.Binding
	size       key.Binding
	shape      key.Binding
	alignment  key.Binding
	icon       key.Binding
	press      key.Binding
	disable    key.Binding
	selected   key.Binding
	theme      key.Binding
	help       key.Binding
	quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		nextIntent: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→", "next intent"),
		),
		prevIntent: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←", "previous intent"),
		),
		variant: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "variant"),
		),
		size: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "size"),
		),
		shape: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "shape"),
		),
		alignment: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "icon side"),
		),
		icon: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "icon"),
		),
		press: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "press"),
		),
		disable: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "disable"),
		),
		selected: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "select"),
		),
		theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.nextIntent, k.variant, k.press, k.disable, k.help, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.nextIntent, k.prevIntent, k.theme},
		{k.variant, k.size, k.shape},
		{k.alignment, k.icon},
		{k.press, k.disable, k.selected},
		{k.help, k.quit},
	}
}
