package theme

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// ColorToken is an indirection over a concrete color value. Tokens are
// compared by what they resolve to, never by identity or name: use Equal.
type ColorToken interface {
	// Color returns the resolved RGB value.
	Color() colorful.Color
	// Opacity returns the alpha multiplier in [0,1].
	Opacity() float64
	// WithOpacity returns a token whose opacity is multiplied by factor.
	// Applying a then b is the same as applying a*b once.
	WithOpacity(factor float64) ColorToken
}

// Clear is the fully transparent token. Variants that draw no
// background or border use it so attribute structs stay fully populated.
var Clear ColorToken = Hex{opacity: 0}

// Hex is a static color parsed from "#rgb", "#rrggbb" or "#rrggbbaa".
type Hex struct {
	rgb     colorful.Color
	opacity float64
}

// ParseHex parses a hex color string.
func ParseHex(value string) (Hex, error) {
	raw := strings.TrimSpace(value)
	if !strings.HasPrefix(raw, "#") {
		return Hex{}, fmt.Errorf("color %q must start with #", value)
	}

	body := raw[1:]
	switch len(body) {
	case 3, 6:
		rgb, err := colorful.Hex(raw)
		if err != nil {
			return Hex{}, fmt.Errorf("color %q: %w", value, err)
		}
		return Hex{rgb: rgb, opacity: 1}, nil
	case 8:
		rgb, err := colorful.Hex("#" + body[:6])
		if err != nil {
			return Hex{}, fmt.Errorf("color %q: %w", value, err)
		}
		alpha, err := strconv.ParseUint(body[6:], 16, 8)
		if err != nil {
			return Hex{}, fmt.Errorf("color %q: alpha: %w", value, err)
		}
		return Hex{rgb: rgb, opacity: float64(alpha) / 255}, nil
	default:
		return Hex{}, fmt.Errorf("color %q has an unsupported length", value)
	}
}

// MustHex is ParseHex for built-in palettes; it panics on malformed input.
func MustHex(value string) Hex {
	h, err := ParseHex(value)
	if err != nil {
		panic(err)
	}
	return h
}

func (h Hex) Color() colorful.Color { return h.rgb }

func (h Hex) Opacity() float64 { return h.opacity }

func (h Hex) WithOpacity(factor float64) ColorToken {
	h.opacity = clampUnit(h.opacity * factor)
	return h
}

func (h Hex) String() string {
	return ValueOf(h).String()
}

// Adaptive pairs a light and a dark color and is bound to one appearance
// when the theme is built, so resolution never queries the terminal.
type Adaptive struct {
	Light Hex
	Dark  Hex
	dark  bool
}

// NewAdaptive binds a lipgloss adaptive color to the given appearance.
func NewAdaptive(c lipgloss.AdaptiveColor, appearance Appearance) (Adaptive, error) {
	light, err := ParseHex(c.Light)
	if err != nil {
		return Adaptive{}, err
	}
	dark, err := ParseHex(c.Dark)
	if err != nil {
		return Adaptive{}, err
	}
	return Adaptive{Light: light, Dark: dark, dark: appearance == AppearanceDark}, nil
}

func (a Adaptive) active() Hex {
	if a.dark {
		return a.Dark
	}
	return a.Light
}

func (a Adaptive) Color() colorful.Color { return a.active().rgb }

func (a Adaptive) Opacity() float64 { return a.active().opacity }

func (a Adaptive) WithOpacity(factor float64) ColorToken {
	a.Light = a.Light.WithOpacity(factor).(Hex)
	a.Dark = a.Dark.WithOpacity(factor).(Hex)
	return a
}

// Lipgloss returns the pair in lipgloss form, dropping opacity.
func (a Adaptive) Lipgloss() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: a.Light.rgb.Clamped().Hex(), Dark: a.Dark.rgb.Clamped().Hex()}
}

// Value is the resolved, comparable form of a token.
type Value struct {
	Hex     string  `json:"hex"`
	Opacity float64 `json:"opacity"`
	alpha   uint8
}

// ValueOf resolves a token. Fully transparent colors all resolve to the
// same value regardless of their RGB.
func ValueOf(token ColorToken) Value {
	if token == nil {
		return Value{Hex: "#000000"}
	}
	opacity := clampUnit(token.Opacity())
	alpha := uint8(math.Round(opacity * 255))
	if alpha == 0 {
		return Value{Hex: "#000000"}
	}
	return Value{
		Hex:     token.Color().Clamped().Hex(),
		Opacity: math.Round(opacity*1000) / 1000,
		alpha:   alpha,
	}
}

func (v Value) String() string {
	if v.alpha == 255 {
		return v.Hex
	}
	return fmt.Sprintf("%s@%d%%", v.Hex, int(math.Round(v.Opacity*100)))
}

// Equal reports whether two tokens resolve to the same color and alpha.
func Equal(a, b ColorToken) bool {
	va, vb := ValueOf(a), ValueOf(b)
	return va.Hex == vb.Hex && va.alpha == vb.alpha
}

// Flatten alpha-blends token over an opaque backdrop, for targets that
// cannot draw translucent colors.
func Flatten(token, backdrop ColorToken) colorful.Color {
	base := colorful.Color{}
	if backdrop != nil {
		base = backdrop.Color()
	}
	if token == nil {
		return base.Clamped()
	}
	return base.BlendRgb(token.Color(), clampUnit(token.Opacity())).Clamped()
}

// Swatch names one color of a resolved attribute set.
type Swatch struct {
	Name  string
	Token ColorToken
}

func tokensEqual(a, b []ColorToken) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func clampUnit(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
