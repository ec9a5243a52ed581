package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is a theme file. Every field is optional: anything left out is
// inherited from the built-in theme named by Base.
type Document struct {
	Name       string             `yaml:"name,omitempty" validate:"omitempty,theme_name"`
	Base       string             `yaml:"base,omitempty" validate:"omitempty,oneof=light dark" jsonschema:"enum=light,enum=dark"`
	Colors     *ColorsDoc         `yaml:"colors,omitempty"`
	Dims       *DimsDoc           `yaml:"dims,omitempty"`
	Spacing    *SpacingDoc        `yaml:"spacing,omitempty"`
	Border     *BorderDoc         `yaml:"border,omitempty"`
	Dropshadow *ShadowDoc         `yaml:"dropshadow,omitempty"`
	Typography map[string]FontDoc `yaml:"typography,omitempty" validate:"omitempty,dive,keys,font_name,endkeys"`
}

// Color is a color value written either as a hex string or as a
// light/dark pair.
type Color struct {
	Hex   string `yaml:"-" validate:"omitempty,color_hex"`
	Light string `yaml:"light,omitempty" validate:"omitempty,color_hex"`
	Dark  string `yaml:"dark,omitempty" validate:"omitempty,color_hex"`
}

// UnmarshalYAML accepts a scalar hex string or a {light, dark} mapping.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		c.Hex = node.Value
		return nil
	case yaml.MappingNode:
		var pair struct {
			Light string `yaml:"light"`
			Dark  string `yaml:"dark"`
		}
		if err := node.Decode(&pair); err != nil {
			return err
		}
		c.Light, c.Dark = pair.Light, pair.Dark
		return nil
	}
	return fmt.Errorf("line %d: color must be a hex string or a light/dark mapping", node.Line)
}

// MarshalYAML writes the scalar form when only Hex is set.
func (c Color) MarshalYAML() (any, error) {
	if c.Light == "" && c.Dark == "" {
		return c.Hex, nil
	}
	return map[string]string{"light": c.Light, "dark": c.Dark}, nil
}

// FamilyDoc overrides one semantic color family and its pressed shades.
type FamilyDoc struct {
	Color            *Color `yaml:"color,omitempty"`
	OnColor          *Color `yaml:"on_color,omitempty"`
	Variant          *Color `yaml:"variant,omitempty"`
	OnVariant        *Color `yaml:"on_variant,omitempty"`
	Container        *Color `yaml:"container,omitempty"`
	OnContainer      *Color `yaml:"on_container,omitempty"`
	Pressed          *Color `yaml:"pressed,omitempty"`
	ContainerPressed *Color `yaml:"container_pressed,omitempty"`
}

// BaseDoc overrides the canvas colors.
type BaseDoc struct {
	Background          *Color `yaml:"background,omitempty"`
	OnBackground        *Color `yaml:"on_background,omitempty"`
	BackgroundVariant   *Color `yaml:"background_variant,omitempty"`
	OnBackgroundVariant *Color `yaml:"on_background_variant,omitempty"`
	Surface             *Color `yaml:"surface,omitempty"`
	OnSurface           *Color `yaml:"on_surface,omitempty"`
	SurfaceInverse      *Color `yaml:"surface_inverse,omitempty"`
	OnSurfaceInverse    *Color `yaml:"on_surface_inverse,omitempty"`
	Outline             *Color `yaml:"outline,omitempty"`
	OutlineHigh         *Color `yaml:"outline_high,omitempty"`
}

// SurfaceDoc overrides the pressed shades of the surface intent.
type SurfaceDoc struct {
	Pressed          *Color `yaml:"pressed,omitempty"`
	ContainerPressed *Color `yaml:"container_pressed,omitempty"`
}

type ColorsDoc struct {
	Main    *FamilyDoc  `yaml:"main,omitempty"`
	Support *FamilyDoc  `yaml:"support,omitempty"`
	Accent  *FamilyDoc  `yaml:"accent,omitempty"`
	Basic   *FamilyDoc  `yaml:"basic,omitempty"`
	Success *FamilyDoc  `yaml:"success,omitempty"`
	Alert   *FamilyDoc  `yaml:"alert,omitempty"`
	Error   *FamilyDoc  `yaml:"error,omitempty"`
	Info    *FamilyDoc  `yaml:"info,omitempty"`
	Neutral *FamilyDoc  `yaml:"neutral,omitempty"`
	Surface *SurfaceDoc `yaml:"surface,omitempty"`
	Base    *BaseDoc    `yaml:"base,omitempty"`
}

// DimsDoc overrides opacity levels. Values must stay strictly decreasing
// after merging with the base theme.
type DimsDoc struct {
	Dim1 *float64 `yaml:"dim1,omitempty" validate:"omitempty,gt=0,lt=1" jsonschema:"exclusiveMinimum=0,exclusiveMaximum=1"`
	Dim2 *float64 `yaml:"dim2,omitempty" validate:"omitempty,gt=0,lt=1" jsonschema:"exclusiveMinimum=0,exclusiveMaximum=1"`
	Dim3 *float64 `yaml:"dim3,omitempty" validate:"omitempty,gt=0,lt=1" jsonschema:"exclusiveMinimum=0,exclusiveMaximum=1"`
	Dim4 *float64 `yaml:"dim4,omitempty" validate:"omitempty,gt=0,lt=1" jsonschema:"exclusiveMinimum=0,exclusiveMaximum=1"`
	Dim5 *float64 `yaml:"dim5,omitempty" validate:"omitempty,gt=0,lt=1" jsonschema:"exclusiveMinimum=0,exclusiveMaximum=1"`
}

type SpacingDoc struct {
	None     *float64 `yaml:"none,omitempty" validate:"omitempty,gte=0"`
	Small    *float64 `yaml:"small,omitempty" validate:"omitempty,gte=0"`
	Medium   *float64 `yaml:"medium,omitempty" validate:"omitempty,gte=0"`
	Large    *float64 `yaml:"large,omitempty" validate:"omitempty,gte=0"`
	XLarge   *float64 `yaml:"xlarge,omitempty" validate:"omitempty,gte=0"`
	XXLarge  *float64 `yaml:"xxlarge,omitempty" validate:"omitempty,gte=0"`
	XXXLarge *float64 `yaml:"xxxlarge,omitempty" validate:"omitempty,gte=0"`
}

type BorderDoc struct {
	Radius *RadiusDoc `yaml:"radius,omitempty"`
	Width  *WidthDoc  `yaml:"width,omitempty"`
}

type RadiusDoc struct {
	None   *float64 `yaml:"none,omitempty" validate:"omitempty,gte=0"`
	Small  *float64 `yaml:"small,omitempty" validate:"omitempty,gte=0"`
	Medium *float64 `yaml:"medium,omitempty" validate:"omitempty,gte=0"`
	Large  *float64 `yaml:"large,omitempty" validate:"omitempty,gte=0"`
	XLarge *float64 `yaml:"xlarge,omitempty" validate:"omitempty,gte=0"`
	Full   *float64 `yaml:"full,omitempty" validate:"omitempty,gte=0"`
}

type WidthDoc struct {
	None   *float64 `yaml:"none,omitempty" validate:"omitempty,gte=0"`
	Small  *float64 `yaml:"small,omitempty" validate:"omitempty,gte=0"`
	Medium *float64 `yaml:"medium,omitempty" validate:"omitempty,gte=0"`
}

type ShadowDoc struct {
	Color   *Color   `yaml:"color,omitempty"`
	OffsetX *float64 `yaml:"offset_x,omitempty"`
	OffsetY *float64 `yaml:"offset_y,omitempty"`
	Blur    *float64 `yaml:"blur,omitempty" validate:"omitempty,gte=0"`
	Opacity *float64 `yaml:"opacity,omitempty" validate:"omitempty,gte=0,lte=1"`
}

type FontDoc struct {
	Size       *float64 `yaml:"size,omitempty" validate:"omitempty,gt=0"`
	LineHeight *float64 `yaml:"line_height,omitempty" validate:"omitempty,gt=0"`
	Weight     *int     `yaml:"weight,omitempty" validate:"omitempty,oneof=400 500 600 700"`
}
