package catalog

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/alexisbeaulieu97/spark/internal/components/button"
	"github.com/alexisbeaulieu97/spark/internal/components/checkbox"
	"github.com/alexisbeaulieu97/spark/internal/components/chip"
	"github.com/alexisbeaulieu97/spark/internal/components/progressbar"
	"github.com/alexisbeaulieu97/spark/internal/components/rating"
	"github.com/alexisbeaulieu97/spark/internal/components/slider"
	"github.com/alexisbeaulieu97/spark/internal/components/tag"
	"github.com/alexisbeaulieu97/spark/internal/icon"
	"github.com/alexisbeaulieu97/spark/internal/state"
	"github.com/alexisbeaulieu97/spark/internal/theme"
	"github.com/alexisbeaulieu97/spark/internal/viewmodel"
	spkerrors "github.com/alexisbeaulieu97/spark/pkg/errors"
)

type attributes[A any] interface {
	state.Dimmable[A]
	Swatches() []theme.Swatch
}

// family adapts one typed resolution use-case to the Family interface.
type family[S comparable, A attributes[A]] struct {
	name        string
	description string
	options     []Option
	style       func(opts map[string]string) (S, error)
	resolve     viewmodel.Resolver[S, A]
	metrics     func(A) map[string]float64
}

func (f *family[S, A]) Name() string        { return f.name }
func (f *family[S, A]) Description() string { return f.description }
func (f *family[S, A]) Options() []Option   { return f.options }

func (f *family[S, A]) Resolve(t *theme.Theme, req Request) (Snapshot, error) {
	if t == nil {
		return Snapshot{}, fmt.Errorf("theme is nil")
	}
	if err := f.checkOptions(req.Options); err != nil {
		return Snapshot{}, err
	}

	style, err := f.style(req.Options)
	if err != nil {
		return Snapshot{}, err
	}

	current := state.Resolve(f.resolve(t, req.Intent, style), req.Interaction, t.Dims)
	swatches := current.Attributes.Swatches()

	snap := Snapshot{
		Family: f.name,
		Theme:  t.Name,
		Intent: req.Intent.String(),
		Style:  f.effective(req.Options),
		Colors: lo.Map(swatches, func(sw theme.Swatch, _ int) ColorValue {
			return ColorValue{Name: sw.Name, Value: theme.ValueOf(sw.Token)}
		}),
		Opacity:     current.Opacity,
		Interactive: current.Interactive,
		Swatches:    swatches,
	}
	if f.metrics != nil {
		snap.Metrics = f.metrics(current.Attributes)
	}
	return snap, nil
}

func (f *family[S, A]) checkOptions(opts map[string]string) error {
	known := lo.Map(f.options, func(o Option, _ int) string { return o.Name })
	for name := range opts {
		if !lo.Contains(known, name) {
			return spkerrors.NewValidationError(name, fmt.Sprintf("family %s has no option %q (want one of %s)", f.name, name, strings.Join(known, ", ")), nil)
		}
	}
	return nil
}

func (f *family[S, A]) effective(opts map[string]string) map[string]string {
	out := make(map[string]string, len(f.options))
	for _, o := range f.options {
		value := strings.TrimSpace(opts[o.Name])
		if len(o.Values) > 0 {
			value = strings.ToLower(value)
		}
		if value == "" {
			value = o.Default
		}
		if value != "" {
			out[o.Name] = value
		}
	}
	return out
}

func option[T fmt.Stringer](name string, values []T, def T) Option {
	return Option{
		Name:    name,
		Values:  lo.Map(values, func(v T, _ int) string { return v.String() }),
		Default: def.String(),
	}
}

func pick[T any](opts map[string]string, name string, parse func(string) (T, error), def T) (T, error) {
	raw := strings.TrimSpace(opts[name])
	if raw == "" {
		return def, nil
	}
	return parse(raw)
}

func builtinFamilies() []Family {
	return []Family{
		buttonFamily(),
		tagFamily(),
		chipFamily(),
		checkboxFamily(),
		sliderFamily(),
		progressbarFamily(),
		ratingFamily(),
	}
}

func buttonFamily() Family {
	def := button.DefaultStyle()
	return &family[button.Style, button.Attributes]{
		name:        "button",
		description: "Pressable action with label and optional icon",
		options: []Option{
			option("variant", button.Variants(), def.Variant),
			option("size", button.Sizes(), def.Size),
			option("shape", button.Shapes(), def.Shape),
			option("alignment", button.Alignments(), def.Alignment),
			{Name: "icon"},
		},
		style: func(opts map[string]string) (button.Style, error) {
			s := def
			var err error
			if s.Variant, err = pick(opts, "variant", button.ParseVariant, def.Variant); err != nil {
				return s, err
			}
			if s.Size, err = pick(opts, "size", button.ParseSize, def.Size); err != nil {
				return s, err
			}
			if s.Shape, err = pick(opts, "shape", button.ParseShape, def.Shape); err != nil {
				return s, err
			}
			if s.Alignment, err = pick(opts, "alignment", button.ParseAlignment, def.Alignment); err != nil {
				return s, err
			}
			if glyph := strings.TrimSpace(opts["icon"]); glyph != "" {
				s.Icon = mo.Some(icon.FromGlyph(icon.Glyph(glyph)))
			}
			return s, nil
		},
		resolve: button.Resolve,
		metrics: func(a button.Attributes) map[string]float64 {
			g := a.Geometry
			return map[string]float64{
				"height":             g.Height,
				"horizontal_padding": g.HorizontalPadding,
				"icon_size":          g.IconSize,
				"icon_spacing":       g.IconSpacing,
				"corner_radius":      g.CornerRadius,
				"border_width":       g.BorderWidth,
			}
		},
	}
}

func tagFamily() Family {
	return &family[tag.Style, tag.Colors]{
		name:        "tag",
		description: "Static status label",
		options:     []Option{option("variant", tag.Variants(), tag.VariantFilled)},
		style: func(opts map[string]string) (tag.Style, error) {
			v, err := pick(opts, "variant", tag.ParseVariant, tag.VariantFilled)
			return tag.Style{Variant: v}, err
		},
		resolve: tag.Resolve,
	}
}

func chipFamily() Family {
	return &family[chip.Style, chip.Attributes]{
		name:        "chip",
		description: "Selectable filter chip",
		options:     []Option{option("variant", chip.Variants(), chip.VariantOutlined)},
		style: func(opts map[string]string) (chip.Style, error) {
			v, err := pick(opts, "variant", chip.ParseVariant, chip.VariantOutlined)
			return chip.Style{Variant: v}, err
		},
		resolve: chip.Resolve,
		metrics: func(a chip.Attributes) map[string]float64 {
			return map[string]float64{"corner_radius": a.CornerRadius, "border_width": a.BorderWidth}
		},
	}
}

func checkboxFamily() Family {
	return &family[checkbox.Style, checkbox.Attributes]{
		name:        "checkbox",
		description: "Selectable box with a checkmark or indeterminate mark",
		options:     []Option{option("mark", checkbox.Marks(), checkbox.MarkCheckmark)},
		style: func(opts map[string]string) (checkbox.Style, error) {
			m, err := pick(opts, "mark", checkbox.ParseMark, checkbox.MarkCheckmark)
			return checkbox.Style{Mark: m}, err
		},
		resolve: checkbox.Resolve,
	}
}

func sliderFamily() Family {
	return &family[slider.Style, slider.Attributes]{
		name:        "slider",
		description: "Continuous value picker with a draggable handle",
		options:     []Option{option("shape", slider.Shapes(), slider.ShapeRounded)},
		style: func(opts map[string]string) (slider.Style, error) {
			s, err := pick(opts, "shape", slider.ParseShape, slider.ShapeRounded)
			return slider.Style{Shape: s}, err
		},
		resolve: slider.Resolve,
		metrics: func(a slider.Attributes) map[string]float64 {
			return map[string]float64{"track_radius": a.TrackRadius}
		},
	}
}

func progressbarFamily() Family {
	return &family[progressbar.Style, progressbar.Attributes]{
		name:        "progressbar",
		description: "Determinate progress indicator",
		options: []Option{
			option("shape", progressbar.Shapes(), progressbar.ShapeRounded),
			option("display", progressbar.DisplayStyles(), progressbar.DisplayDefault),
		},
		style: func(opts map[string]string) (progressbar.Style, error) {
			s := progressbar.Style{Shape: progressbar.ShapeRounded, Display: progressbar.DisplayDefault}
			var err error
			if s.Shape, err = pick(opts, "shape", progressbar.ParseShape, s.Shape); err != nil {
				return s, err
			}
			s.Display, err = pick(opts, "display", progressbar.ParseDisplayStyle, s.Display)
			return s, err
		},
		resolve: progressbar.Resolve,
		metrics: func(a progressbar.Attributes) map[string]float64 {
			return map[string]float64{"corner_radius": a.CornerRadius, "bottom_space": a.BottomSpace}
		},
	}
}

func ratingFamily() Family {
	return &family[rating.Style, rating.Attributes]{
		name:        "rating",
		description: "Star rating",
		options:     []Option{option("size", rating.Sizes(), rating.SizeMedium)},
		style: func(opts map[string]string) (rating.Style, error) {
			s, err := pick(opts, "size", rating.ParseSize, rating.SizeMedium)
			return rating.Style{Size: s}, err
		},
		resolve: rating.Resolve,
		metrics: func(a rating.Attributes) map[string]float64 {
			return map[string]float64{"star_size": a.StarSize, "border_width": a.BorderWidth, "spacing": a.Spacing}
		},
	}
}
