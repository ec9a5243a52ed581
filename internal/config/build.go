package config

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/spark/internal/theme"
	spkerrors "github.com/alexisbeaulieu97/spark/pkg/errors"
)

// Build merges doc onto its base theme. The result is a fresh theme; the
// built-ins are never modified.
func Build(doc *Document) (*theme.Theme, error) {
	if err := ValidateDocument(doc); err != nil {
		return nil, err
	}

	base := doc.Base
	if base == "" {
		base = theme.AppearanceLight.String()
	}
	t, ok := theme.Builtin(base)
	if !ok {
		return nil, spkerrors.NewValidationError("base", fmt.Sprintf("unknown base theme %q", base), nil)
	}
	if doc.Name != "" {
		t.Name = doc.Name
	}

	b := &builder{appearance: t.Appearance}
	b.colors(&t.Colors, doc.Colors)
	b.dims(&t.Dims, doc.Dims)
	b.spacing(&t.Spacing, doc.Spacing)
	b.border(&t.Border, doc.Border)
	b.shadow(&t.Elevation.Dropshadow, doc.Dropshadow)
	b.typography(&t.Typography, doc.Typography)
	if b.err != nil {
		return nil, b.err
	}

	if err := validatorInstance().Struct(t.Dims); err != nil {
		return nil, convertValidationError(err)
	}
	return t, nil
}

// builder applies overrides and keeps the first conversion error.
type builder struct {
	appearance theme.Appearance
	err        error
}

func (b *builder) color(field string, dst *theme.ColorToken, src *Color) {
	if src == nil || b.err != nil {
		return
	}
	token, err := Token(*src, b.appearance)
	if err != nil {
		b.err = spkerrors.NewValidationError(field, err.Error(), err)
		return
	}
	*dst = token
}

func number(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

// Token converts a document color into a theme token bound to appearance.
func Token(c Color, appearance theme.Appearance) (theme.ColorToken, error) {
	if c.Light != "" || c.Dark != "" {
		return theme.NewAdaptive(lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Dark}, appearance)
	}
	return theme.ParseHex(c.Hex)
}

func (b *builder) family(name string, f *theme.ColorFamily, s *theme.StateColors, doc *FamilyDoc) {
	if doc == nil {
		return
	}
	prefix := "colors." + name + "."
	b.color(prefix+"color", &f.Color, doc.Color)
	b.color(prefix+"on_color", &f.OnColor, doc.OnColor)
	b.color(prefix+"variant", &f.Variant, doc.Variant)
	b.color(prefix+"on_variant", &f.OnVariant, doc.OnVariant)
	b.color(prefix+"container", &f.Container, doc.Container)
	b.color(prefix+"on_container", &f.OnContainer, doc.OnContainer)
	b.color(prefix+"pressed", &s.Pressed, doc.Pressed)
	b.color(prefix+"container_pressed", &s.ContainerPressed, doc.ContainerPressed)
}

func (b *builder) colors(c *theme.Colors, doc *ColorsDoc) {
	if doc == nil {
		return
	}
	b.family("main", &c.Main, &c.States.Main, doc.Main)
	b.family("support", &c.Support, &c.States.Support, doc.Support)
	b.family("accent", &c.Accent, &c.States.Accent, doc.Accent)
	b.family("basic", &c.Basic, &c.States.Basic, doc.Basic)
	b.family("success", &c.Feedback.Success, &c.States.Success, doc.Success)
	b.family("alert", &c.Feedback.Alert, &c.States.Alert, doc.Alert)
	b.family("error", &c.Feedback.Error, &c.States.Error, doc.Error)
	b.family("info", &c.Feedback.Info, &c.States.Info, doc.Info)
	b.family("neutral", &c.Feedback.Neutral, &c.States.Neutral, doc.Neutral)

	if s := doc.Surface; s != nil {
		b.color("colors.surface.pressed", &c.States.Surface.Pressed, s.Pressed)
		b.color("colors.surface.container_pressed", &c.States.Surface.ContainerPressed, s.ContainerPressed)
	}

	if base := doc.Base; base != nil {
		b.color("colors.base.background", &c.Base.Background, base.Background)
		b.color("colors.base.on_background", &c.Base.OnBackground, base.OnBackground)
		b.color("colors.base.background_variant", &c.Base.BackgroundVariant, base.BackgroundVariant)
		b.color("colors.base.on_background_variant", &c.Base.OnBackgroundVariant, base.OnBackgroundVariant)
		b.color("colors.base.surface", &c.Base.Surface, base.Surface)
		b.color("colors.base.on_surface", &c.Base.OnSurface, base.OnSurface)
		b.color("colors.base.surface_inverse", &c.Base.SurfaceInverse, base.SurfaceInverse)
		b.color("colors.base.on_surface_inverse", &c.Base.OnSurfaceInverse, base.OnSurfaceInverse)
		b.color("colors.base.outline", &c.Base.Outline, base.Outline)
		b.color("colors.base.outline_high", &c.Base.OutlineHigh, base.OutlineHigh)
	}
}

func (b *builder) dims(d *theme.Dims, doc *DimsDoc) {
	if doc == nil {
		return
	}
	number(&d.Dim1, doc.Dim1)
	number(&d.Dim2, doc.Dim2)
	number(&d.Dim3, doc.Dim3)
	number(&d.Dim4, doc.Dim4)
	number(&d.Dim5, doc.Dim5)
}

func (b *builder) spacing(s *theme.Spacing, doc *SpacingDoc) {
	if doc == nil {
		return
	}
	number(&s.None, doc.None)
	number(&s.Small, doc.Small)
	number(&s.Medium, doc.Medium)
	number(&s.Large, doc.Large)
	number(&s.XLarge, doc.XLarge)
	number(&s.XXLarge, doc.XXLarge)
	number(&s.XXXLarge, doc.XXXLarge)
}

func (b *builder) border(br *theme.Border, doc *BorderDoc) {
	if doc == nil {
		return
	}
	if r := doc.Radius; r != nil {
		number(&br.Radius.None, r.None)
		number(&br.Radius.Small, r.Small)
		number(&br.Radius.Medium, r.Medium)
		number(&br.Radius.Large, r.Large)
		number(&br.Radius.XLarge, r.XLarge)
		number(&br.Radius.Full, r.Full)
	}
	if w := doc.Width; w != nil {
		number(&br.Width.None, w.None)
		number(&br.Width.Small, w.Small)
		number(&br.Width.Medium, w.Medium)
	}
}

func (b *builder) shadow(s *theme.Shadow, doc *ShadowDoc) {
	if doc == nil {
		return
	}
	b.color("dropshadow.color", &s.Color, doc.Color)
	number(&s.OffsetX, doc.OffsetX)
	number(&s.OffsetY, doc.OffsetY)
	number(&s.Blur, doc.Blur)
	number(&s.Opacity, doc.Opacity)
}

func (b *builder) typography(t *theme.Typography, doc map[string]FontDoc) {
	slots := fontSlots(t)
	for name, font := range doc {
		slot, ok := slots[name]
		if !ok {
			if b.err == nil {
				b.err = spkerrors.NewValidationError("typography."+name, "unknown font token", nil)
			}
			continue
		}
		number(&slot.Size, font.Size)
		number(&slot.LineHeight, font.LineHeight)
		if font.Weight != nil {
			slot.Weight = theme.Weight(*font.Weight)
		}
	}
}

// fontSlots maps document font names onto the fields of t.
func fontSlots(t *theme.Typography) map[string]*theme.Font {
	return map[string]*theme.Font{
		"display1":          &t.Display1,
		"display2":          &t.Display2,
		"display3":          &t.Display3,
		"headline1":         &t.Headline1,
		"headline2":         &t.Headline2,
		"subhead":           &t.Subhead,
		"body1":             &t.Body1,
		"body1_highlight":   &t.Body1Highlight,
		"body2":             &t.Body2,
		"body2_highlight":   &t.Body2Highlight,
		"caption":           &t.Caption,
		"caption_highlight": &t.CaptionHighlight,
		"small":             &t.Small,
		"small_highlight":   &t.SmallHighlight,
		"callout":           &t.Callout,
	}
}
