package theme

import (
	"fmt"
	"sort"
	"strings"
)

// Appearance selects the light or dark side of adaptive colors.
type Appearance int

const (
	AppearanceLight Appearance = iota
	AppearanceDark
)

func (a Appearance) String() string {
	if a == AppearanceDark {
		return "dark"
	}
	return "light"
}

// ParseAppearance accepts "light" or "dark".
func ParseAppearance(value string) (Appearance, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "light":
		return AppearanceLight, nil
	case "dark":
		return AppearanceDark, nil
	}
	return AppearanceLight, fmt.Errorf("unknown appearance %q", value)
}

// Theme is an immutable styling theme. Build one, then share the pointer:
// replacing a theme means swapping the pointer, never editing fields.
type Theme struct {
	Name       string
	Appearance Appearance
	Colors     Colors
	Dims       Dims
	Spacing    Spacing
	Border     Border
	Elevation  Elevation
	Typography Typography
}

// Equal compares two themes by value. Colors compare by resolved value.
func (t *Theme) Equal(o *Theme) bool {
	if t == o {
		return true
	}
	if t == nil || o == nil {
		return false
	}
	return t.Name == o.Name &&
		t.Appearance == o.Appearance &&
		t.Dims == o.Dims &&
		t.Spacing == o.Spacing &&
		t.Border == o.Border &&
		t.Typography == o.Typography &&
		t.Elevation.Equal(o.Elevation) &&
		t.Colors.Equal(o.Colors)
}

func family(color, onColor, variant, onVariant, container, onContainer string) ColorFamily {
	return ColorFamily{
		Color:       MustHex(color),
		OnColor:     MustHex(onColor),
		Variant:     MustHex(variant),
		OnVariant:   MustHex(onVariant),
		Container:   MustHex(container),
		OnContainer: MustHex(onContainer),
	}
}

func pressed(color, container string) StateColors {
	return StateColors{Pressed: MustHex(color), ContainerPressed: MustHex(container)}
}

// Default returns the built-in light theme.
func Default() *Theme {
	colors := Colors{
		Main:    family("#2d4ae8", "#ffffff", "#1b34b8", "#ffffff", "#dde3ff", "#0c1a66"),
		Support: family("#00a38b", "#ffffff", "#007a68", "#ffffff", "#ccf1ea", "#00382f"),
		Accent:  family("#9747ff", "#ffffff", "#7424db", "#ffffff", "#eee0ff", "#2e0066"),
		Basic:   family("#2c3847", "#ffffff", "#1a222c", "#ffffff", "#e3e8ef", "#111820"),
		Feedback: Feedback{
			Success: family("#3ca454", "#ffffff", "#2b7d3e", "#ffffff", "#d6f1dc", "#0c3517"),
			Alert:   family("#ffb400", "#1c1300", "#cc9000", "#1c1300", "#fff2cc", "#4d3600"),
			Error:   family("#e33030", "#ffffff", "#b71f1f", "#ffffff", "#fcdada", "#5c0b0b"),
			Info:    family("#1c8ee3", "#ffffff", "#116db3", "#ffffff", "#d4ebfc", "#08355a"),
			Neutral: family("#6b7480", "#ffffff", "#4f5761", "#ffffff", "#e8eaed", "#23272d"),
		},
		States: States{
			Main:    pressed("#1f36b8", "#c5cfff"),
			Support: pressed("#007f6c", "#afe6dc"),
			Accent:  pressed("#7a2be0", "#ddc6ff"),
			Basic:   pressed("#1a222c", "#ccd3dd"),
			Success: pressed("#2d8442", "#bde7c7"),
			Alert:   pressed("#d69700", "#ffe7a3"),
			Error:   pressed("#bf2020", "#f8c0c0"),
			Info:    pressed("#1270b8", "#b5dcf8"),
			Neutral: pressed("#525a64", "#d3d7dc"),
			Surface: pressed("#edeff2", "#3a414b"),
		},
		Base: Base{
			Background:          MustHex("#ffffff"),
			OnBackground:        MustHex("#16191d"),
			BackgroundVariant:   MustHex("#f4f6f8"),
			OnBackgroundVariant: MustHex("#16191d"),
			Surface:             MustHex("#ffffff"),
			OnSurface:           MustHex("#16191d"),
			SurfaceInverse:      MustHex("#2a3038"),
			OnSurfaceInverse:    MustHex("#f4f6f8"),
			Outline:             MustHex("#a6aeb9"),
			OutlineHigh:         MustHex("#16191d"),
		},
	}

	return &Theme{
		Name:       "light",
		Appearance: AppearanceLight,
		Colors:     colors,
		Dims:       DefaultDims(),
		Spacing:    DefaultSpacing(),
		Border:     DefaultBorder(),
		Elevation: Elevation{
			Dropshadow: Shadow{Color: MustHex("#000000"), OffsetY: 4, Blur: 4, Opacity: 0.25},
		},
		Typography: DefaultTypography(),
	}
}

// Dark returns the built-in dark theme.
func Dark() *Theme {
	colors := Colors{
		Main:    family("#8fa2ff", "#0c1a66", "#b3c0ff", "#0c1a66", "#1f2f8c", "#dde3ff"),
		Support: family("#4fd1bb", "#00382f", "#85e0d0", "#00382f", "#005446", "#ccf1ea"),
		Accent:  family("#c49bff", "#2e0066", "#d9bfff", "#2e0066", "#4d1a99", "#eee0ff"),
		Basic:   family("#c9d1dc", "#111820", "#e3e8ef", "#111820", "#3a4656", "#e3e8ef"),
		Feedback: Feedback{
			Success: family("#78d08e", "#0c3517", "#a3e0b2", "#0c3517", "#1a5a2a", "#d6f1dc"),
			Alert:   family("#ffcc4d", "#4d3600", "#ffdb80", "#4d3600", "#735000", "#fff2cc"),
			Error:   family("#ff7a7a", "#5c0b0b", "#ffa3a3", "#5c0b0b", "#8c1a1a", "#fcdada"),
			Info:    family("#6fb9f0", "#08355a", "#a0d0f5", "#08355a", "#0f4f85", "#d4ebfc"),
			Neutral: family("#a9b0b9", "#23272d", "#c6cbd1", "#23272d", "#454c55", "#e8eaed"),
		},
		States: States{
			Main:    pressed("#aab8ff", "#2a3ba3"),
			Support: pressed("#72dcc9", "#00695a"),
			Accent:  pressed("#d3b3ff", "#5e24b3"),
			Basic:   pressed("#dde3ea", "#4a5869"),
			Success: pressed("#98dca9", "#236e35"),
			Alert:   pressed("#ffd978", "#8a6100"),
			Error:   pressed("#ff9d9d", "#a32424"),
			Info:    pressed("#94cbf4", "#155f9c"),
			Neutral: pressed("#c0c6cd", "#555d67"),
			Surface: pressed("#2a3038", "#dde3ea"),
		},
		Base: Base{
			Background:          MustHex("#0f1216"),
			OnBackground:        MustHex("#f4f6f8"),
			BackgroundVariant:   MustHex("#1a1e24"),
			OnBackgroundVariant: MustHex("#f4f6f8"),
			Surface:             MustHex("#16191d"),
			OnSurface:           MustHex("#f4f6f8"),
			SurfaceInverse:      MustHex("#f4f6f8"),
			OnSurfaceInverse:    MustHex("#16191d"),
			Outline:             MustHex("#5c6570"),
			OutlineHigh:         MustHex("#f4f6f8"),
		},
	}

	t := Default()
	t.Name = "dark"
	t.Appearance = AppearanceDark
	t.Colors = colors
	t.Elevation.Dropshadow.Opacity = 0.5
	return t
}

var builtins = map[string]func() *Theme{
	"light": Default,
	"dark":  Dark,
}

// Builtin returns a fresh copy of a built-in theme by name.
func Builtin(name string) (*Theme, bool) {
	build, ok := builtins[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, false
	}
	return build(), true
}

// BuiltinNames lists the built-in theme names in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
