package theme

// ColorFamily is one semantic color group: a base color, its readable
// on-color, a variant pair and a container pair.
type ColorFamily struct {
	Color       ColorToken
	OnColor     ColorToken
	Variant     ColorToken
	OnVariant   ColorToken
	Container   ColorToken
	OnContainer ColorToken
}

func (f ColorFamily) tokens() []ColorToken {
	return []ColorToken{f.Color, f.OnColor, f.Variant, f.OnVariant, f.Container, f.OnContainer}
}

// Equal compares two families by resolved value.
func (f ColorFamily) Equal(o ColorFamily) bool {
	return tokensEqual(f.tokens(), o.tokens())
}

// Feedback groups the status families.
type Feedback struct {
	Success ColorFamily
	Alert   ColorFamily
	Error   ColorFamily
	Info    ColorFamily
	Neutral ColorFamily
}

func (f Feedback) families() []ColorFamily {
	return []ColorFamily{f.Success, f.Alert, f.Error, f.Info, f.Neutral}
}

// StateColors holds the pressed shades of a family.
type StateColors struct {
	Pressed          ColorToken
	ContainerPressed ColorToken
}

// States holds pressed shades for every family plus the surface.
type States struct {
	Main    StateColors
	Support StateColors
	Accent  StateColors
	Basic   StateColors
	Success StateColors
	Alert   StateColors
	Error   StateColors
	Info    StateColors
	Neutral StateColors
	Surface StateColors
}

func (s States) tokens() []ColorToken {
	all := []StateColors{s.Main, s.Support, s.Accent, s.Basic, s.Success, s.Alert, s.Error, s.Info, s.Neutral, s.Surface}
	out := make([]ColorToken, 0, len(all)*2)
	for _, sc := range all {
		out = append(out, sc.Pressed, sc.ContainerPressed)
	}
	return out
}

// Base holds the neutral canvas colors.
type Base struct {
	Background          ColorToken
	OnBackground        ColorToken
	BackgroundVariant   ColorToken
	OnBackgroundVariant ColorToken
	Surface             ColorToken
	OnSurface           ColorToken
	SurfaceInverse      ColorToken
	OnSurfaceInverse    ColorToken
	Outline             ColorToken
	OutlineHigh         ColorToken
}

func (b Base) tokens() []ColorToken {
	return []ColorToken{
		b.Background, b.OnBackground, b.BackgroundVariant, b.OnBackgroundVariant,
		b.Surface, b.OnSurface, b.SurfaceInverse, b.OnSurfaceInverse,
		b.Outline, b.OutlineHigh,
	}
}

// Colors is the full palette of a theme.
type Colors struct {
	Main     ColorFamily
	Support  ColorFamily
	Accent   ColorFamily
	Basic    ColorFamily
	Feedback Feedback
	States   States
	Base     Base
}

func (c Colors) tokens() []ColorToken {
	families := append([]ColorFamily{c.Main, c.Support, c.Accent, c.Basic}, c.Feedback.families()...)
	out := make([]ColorToken, 0, 64)
	for _, f := range families {
		out = append(out, f.tokens()...)
	}
	out = append(out, c.States.tokens()...)
	return append(out, c.Base.tokens()...)
}

// Equal compares two palettes by resolved value.
func (c Colors) Equal(o Colors) bool {
	return tokensEqual(c.tokens(), o.tokens())
}

// Complete reports whether every token of the palette is set.
func (c Colors) Complete() bool {
	for _, token := range c.tokens() {
		if token == nil {
			return false
		}
	}
	return true
}
