package config

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/spark/internal/theme"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	colorHexPattern  = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	themeNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "" || name == "-" {
				return strings.ToLower(fld.Name)
			}
			return name
		})

		_ = v.RegisterValidation("color_hex", func(fl validator.FieldLevel) bool {
			return colorHexPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("theme_name", func(fl validator.FieldLevel) bool {
			return themeNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("font_name", func(fl validator.FieldLevel) bool {
			_, ok := fontSlots(&theme.Typography{})[fl.Field().String()]
			return ok
		})

		v.RegisterStructValidation(colorForm, Color{})
		v.RegisterStructValidation(dimsOrder, theme.Dims{})

		validateInst = v
	})

	return validateInst
}

// colorForm requires exactly one of the scalar or the light/dark form.
func colorForm(sl validator.StructLevel) {
	c := sl.Current().Interface().(Color)
	pair := c.Light != "" || c.Dark != ""

	switch {
	case c.Hex == "" && !pair:
		sl.ReportError(c.Hex, "hex", "Hex", "color_form", "")
	case c.Hex != "" && pair:
		sl.ReportError(c.Hex, "hex", "Hex", "color_form", "")
	case pair && c.Light == "":
		sl.ReportError(c.Light, "light", "Light", "color_form", "")
	case pair && c.Dark == "":
		sl.ReportError(c.Dark, "dark", "Dark", "color_form", "")
	}
}

// dimsOrder requires 1 > Dim1 > Dim2 > ... > Dim5 > 0.
func dimsOrder(sl validator.StructLevel) {
	d := sl.Current().Interface().(theme.Dims)
	levels := d.Levels()
	names := [...]string{"dim1", "dim2", "dim3", "dim4", "dim5"}

	prev := theme.OpacityNone
	for i, level := range levels {
		if level <= 0 || level >= prev {
			sl.ReportError(level, names[i], strings.ToUpper(names[i][:1])+names[i][1:], "dims_order", "")
			return
		}
		prev = level
	}
}
