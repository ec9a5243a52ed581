package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/spark/internal/theme"
	spkerrors "github.com/alexisbeaulieu97/spark/pkg/errors"
)

func TestParseTheme(t *testing.T) {
	t.Parallel()

	override := `name: ocean
base: dark
colors:
  main:
    color: "#0000ff"
    on_color: "#fff"
  base:
    surface:
      light: "#ffffff"
      dark: "#101010"
dims:
  dim5: 0.05
spacing:
  small: 2
typography:
  body1:
    weight: 600
`

	badYAML := `name: [broken
`

	unknownKey := `name: ocean
colour: red
`

	badColor := `colors:
  accent:
    container: "blue"
`

	halfPair := `colors:
  base:
    outline:
      light: "#ffffff"
`

	badDims := `dims:
  dim2: 0.9
`

	dimOutOfRange := `dims:
  dim1: 1.5
`

	badBase := `base: sepia
`

	badFont := `typography:
  jumbo:
    size: 80
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, th *theme.Theme, err error)
	}{
		{
			name:     "overrides merge onto the base theme",
			contents: override,
			assert: func(t *testing.T, th *theme.Theme, err error) {
				require.NoError(t, err)
				dark := theme.Dark()

				require.Equal(t, "ocean", th.Name)
				require.Equal(t, theme.AppearanceDark, th.Appearance)
				require.Equal(t, "#0000ff", theme.ValueOf(th.Colors.Main.Color).String())
				require.Equal(t, "#ffffff", theme.ValueOf(th.Colors.Main.OnColor).String())
				require.Equal(t, "#101010", theme.ValueOf(th.Colors.Base.Surface).String())
				require.True(t, theme.Equal(dark.Colors.Main.Container, th.Colors.Main.Container))
				require.True(t, theme.Equal(dark.Colors.States.Main.Pressed, th.Colors.States.Main.Pressed))

				require.Equal(t, 0.05, th.Dims.Dim5)
				require.Equal(t, dark.Dims.Dim1, th.Dims.Dim1)
				require.Equal(t, float64(2), th.Spacing.Small)
				require.Equal(t, theme.WeightSemibold, th.Typography.Body1.Weight)
				require.Equal(t, dark.Typography.Body1.Size, th.Typography.Body1.Size)
			},
		},
		{
			name:     "empty document is the light theme",
			contents: "",
			assert: func(t *testing.T, th *theme.Theme, err error) {
				require.NoError(t, err)
				require.True(t, th.Equal(theme.Default()))
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: badYAML,
			assert: func(t *testing.T, th *theme.Theme, err error) {
				var parseErr *spkerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, "inline.yaml", parseErr.Path)
				require.Positive(t, parseErr.Line)
			},
		},
		{
			name:     "unknown keys are rejected",
			contents: unknownKey,
			assert: func(t *testing.T, th *theme.Theme, err error) {
				var parseErr *spkerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "colour")
				require.Equal(t, 2, parseErr.Line)
			},
		},
		{
			name:     "malformed color returns validation error",
			contents: badColor,
			assert: func(t *testing.T, th *theme.Theme, err error) {
				requireField(t, err, "colors.accent.container.hex")
			},
		},
		{
			name:     "light without dark is rejected",
			contents: halfPair,
			assert: func(t *testing.T, th *theme.Theme, err error) {
				requireField(t, err, "colors.base.outline.dark")
			},
		},
		{
			name:     "dims must keep decreasing after merge",
			contents: badDims,
			assert: func(t *testing.T, th *theme.Theme, err error) {
				requireField(t, err, "dims.dim2")
			},
		},
		{
			name:     "dims must stay inside the unit interval",
			contents: dimOutOfRange,
			assert: func(t *testing.T, th *theme.Theme, err error) {
				requireField(t, err, "dims.dim1")
			},
		},
		{
			name:     "unknown base is rejected",
			contents: badBase,
			assert: func(t *testing.T, th *theme.Theme, err error) {
				requireField(t, err, "base")
			},
		},
		{
			name:     "unknown font token is rejected",
			contents: badFont,
			assert: func(t *testing.T, th *theme.Theme, err error) {
				var validationErr *spkerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Field, "typography")
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			th, err := ParseTheme("inline.yaml", []byte(tc.contents))
			tc.assert(t, th, err)
		})
	}
}

func requireField(t *testing.T, err error, field string) {
	t.Helper()

	var validationErr *spkerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, field, validationErr.Field)
}

func TestLoadTheme(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: file\n"), 0o644))

	th, err := LoadTheme(path)
	require.NoError(t, err)
	require.Equal(t, "file", th.Name)

	_, err = LoadTheme(filepath.Join(dir, "missing.yaml"))
	var parseErr *spkerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestLoadThemeFS(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/themes/night.yaml", []byte("name: night\nbase: dark\n"), 0o644))

	th, err := LoadThemeFS(fs, "/themes/night.yaml")
	require.NoError(t, err)
	require.Equal(t, "night", th.Name)
	require.Equal(t, theme.AppearanceDark, th.Appearance)

	_, err = LoadThemeFS(fs, "/themes/day.yaml")
	var parseErr *spkerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "/themes/day.yaml", parseErr.Path)
}

func TestExportRoundTrips(t *testing.T) {
	t.Parallel()

	for _, original := range []*theme.Theme{theme.Default(), theme.Dark()} {
		data, err := Marshal(Export(original))
		require.NoError(t, err)

		rebuilt, err := ParseTheme("export.yaml", data)
		require.NoError(t, err, string(data))
		require.True(t, rebuilt.Equal(original), original.Name)
	}
}

func TestAdaptiveColorsRoundTrip(t *testing.T) {
	t.Parallel()

	doc := `colors:
  main:
    color:
      light: "#112233"
      dark: "#445566cc"
`
	th, err := ParseTheme("adaptive.yaml", []byte(doc))
	require.NoError(t, err)

	adaptive, ok := th.Colors.Main.Color.(theme.Adaptive)
	require.True(t, ok)
	require.Equal(t, "#112233", theme.ValueOf(adaptive).String())

	exported := Export(th).Colors.Main.Color
	require.Equal(t, "#112233", exported.Light)
	require.Equal(t, "#445566cc", exported.Dark)
}

func TestHexString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "#0000ff", HexString(theme.MustHex("#00f")))
	require.Equal(t, "#0000ff66", HexString(theme.MustHex("#0000ff").WithOpacity(0.4)))
	require.Equal(t, "#00000000", HexString(theme.Clear))
}
