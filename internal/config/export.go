package config

import (
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/alexisbeaulieu97/spark/internal/theme"
)

// Export writes every token of t into a document, so that building the
// document again yields an equal theme.
func Export(t *theme.Theme) *Document {
	c := t.Colors
	doc := &Document{
		Name: t.Name,
		Base: t.Appearance.String(),
		Colors: &ColorsDoc{
			Main:    exportFamily(c.Main, c.States.Main),
			Support: exportFamily(c.Support, c.States.Support),
			Accent:  exportFamily(c.Accent, c.States.Accent),
			Basic:   exportFamily(c.Basic, c.States.Basic),
			Success: exportFamily(c.Feedback.Success, c.States.Success),
			Alert:   exportFamily(c.Feedback.Alert, c.States.Alert),
			Error:   exportFamily(c.Feedback.Error, c.States.Error),
			Info:    exportFamily(c.Feedback.Info, c.States.Info),
			Neutral: exportFamily(c.Feedback.Neutral, c.States.Neutral),
			Surface: &SurfaceDoc{
				Pressed:          exportColor(c.States.Surface.Pressed),
				ContainerPressed: exportColor(c.States.Surface.ContainerPressed),
			},
			Base: &BaseDoc{
				Background:          exportColor(c.Base.Background),
				OnBackground:        exportColor(c.Base.OnBackground),
				BackgroundVariant:   exportColor(c.Base.BackgroundVariant),
				OnBackgroundVariant: exportColor(c.Base.OnBackgroundVariant),
				Surface:             exportColor(c.Base.Surface),
				OnSurface:           exportColor(c.Base.OnSurface),
				SurfaceInverse:      exportColor(c.Base.SurfaceInverse),
				OnSurfaceInverse:    exportColor(c.Base.OnSurfaceInverse),
				Outline:             exportColor(c.Base.Outline),
				OutlineHigh:         exportColor(c.Base.OutlineHigh),
			},
		},
		Dims: &DimsDoc{
			Dim1: lo.ToPtr(t.Dims.Dim1),
			Dim2: lo.ToPtr(t.Dims.Dim2),
			Dim3: lo.ToPtr(t.Dims.Dim3),
			Dim4: lo.ToPtr(t.Dims.Dim4),
			Dim5: lo.ToPtr(t.Dims.Dim5),
		},
		Spacing: &SpacingDoc{
			None:     lo.ToPtr(t.Spacing.None),
			Small:    lo.ToPtr(t.Spacing.Small),
			Medium:   lo.ToPtr(t.Spacing.Medium),
			Large:    lo.ToPtr(t.Spacing.Large),
			XLarge:   lo.ToPtr(t.Spacing.XLarge),
			XXLarge:  lo.ToPtr(t.Spacing.XXLarge),
			XXXLarge: lo.ToPtr(t.Spacing.XXXLarge),
		},
		Border: &BorderDoc{
			Radius: &RadiusDoc{
				None:   lo.ToPtr(t.Border.Radius.None),
				Small:  lo.ToPtr(t.Border.Radius.Small),
				Medium: lo.ToPtr(t.Border.Radius.Medium),
				Large:  lo.ToPtr(t.Border.Radius.Large),
				XLarge: lo.ToPtr(t.Border.Radius.XLarge),
				Full:   lo.ToPtr(t.Border.Radius.Full),
			},
			Width: &WidthDoc{
				None:   lo.ToPtr(t.Border.Width.None),
				Small:  lo.ToPtr(t.Border.Width.Small),
				Medium: lo.ToPtr(t.Border.Width.Medium),
			},
		},
		Dropshadow: &ShadowDoc{
			Color:   exportColor(t.Elevation.Dropshadow.Color),
			OffsetX: lo.ToPtr(t.Elevation.Dropshadow.OffsetX),
			OffsetY: lo.ToPtr(t.Elevation.Dropshadow.OffsetY),
			Blur:    lo.ToPtr(t.Elevation.Dropshadow.Blur),
			Opacity: lo.ToPtr(t.Elevation.Dropshadow.Opacity),
		},
		Typography: make(map[string]FontDoc),
	}

	typography := t.Typography
	for name, font := range fontSlots(&typography) {
		doc.Typography[name] = FontDoc{
			Size:       lo.ToPtr(font.Size),
			LineHeight: lo.ToPtr(font.LineHeight),
			Weight:     lo.ToPtr(int(font.Weight)),
		}
	}
	return doc
}

func exportFamily(f theme.ColorFamily, s theme.StateColors) *FamilyDoc {
	return &FamilyDoc{
		Color:            exportColor(f.Color),
		OnColor:          exportColor(f.OnColor),
		Variant:          exportColor(f.Variant),
		OnVariant:        exportColor(f.OnVariant),
		Container:        exportColor(f.Container),
		OnContainer:      exportColor(f.OnContainer),
		Pressed:          exportColor(s.Pressed),
		ContainerPressed: exportColor(s.ContainerPressed),
	}
}

func exportColor(token theme.ColorToken) *Color {
	if a, ok := token.(theme.Adaptive); ok {
		return &Color{Light: HexString(a.Light), Dark: HexString(a.Dark)}
	}
	return &Color{Hex: HexString(token)}
}

// HexString formats token as "#rrggbb", or "#rrggbbaa" when translucent.
func HexString(token theme.ColorToken) string {
	if token == nil {
		return "#00000000"
	}
	hex := token.Color().Clamped().Hex()
	alpha := int(math.Round(math.Min(math.Max(token.Opacity(), 0), 1) * 255))
	if alpha == 255 {
		return hex
	}
	return fmt.Sprintf("%s%02x", hex, alpha)
}
