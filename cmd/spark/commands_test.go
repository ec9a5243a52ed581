package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/spark/internal/catalog"
	spkerrors "github.com/alexisbeaulieu97/spark/pkg/errors"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestResolveJSON(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "resolve", "button", "--intent", "danger", "--variant", "outlined", "--disabled", "--json")
	require.NoError(t, err)

	var snap catalog.Snapshot
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	require.Equal(t, "button", snap.Family)
	require.Equal(t, "danger", snap.Intent)
	require.Equal(t, "outlined", snap.Style["variant"])
	require.Equal(t, "medium", snap.Style["size"])
	require.False(t, snap.Interactive)
	require.InDelta(t, 0.40, snap.Opacity, 1e-9)
	require.NotEmpty(t, snap.Colors)
}

func TestResolvePlainText(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "resolve", "rating", "--size", "large")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "rating/main  opacity 1.00"))
	require.Contains(t, out, "star_size=40")
	require.NotContains(t, out, "\x1b[")
}

func TestResolveRejectsBadInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		args  []string
		field string
	}{
		{name: "unknown family", args: []string{"resolve", "toggle"}, field: "family"},
		{name: "unknown intent", args: []string{"resolve", "tag", "--intent", "primary"}, field: "intent"},
		{name: "option of another family", args: []string{"resolve", "tag", "--mark", "checkmark"}, field: "mark"},
		{name: "unknown value", args: []string{"resolve", "chip", "--variant", "glossy"}, field: "variant"},
		{name: "unknown theme", args: []string{"resolve", "tag", "--theme", "sepia"}, field: "theme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := execute(t, tt.args...)
			require.Error(t, err)

			var verr *spkerrors.ValidationError
			require.True(t, errors.As(err, &verr), "got %T: %v", err, err)
			require.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestSwatchRendersEveryState(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "swatch", "chip", "--theme", "dark")
	require.NoError(t, err)
	for _, name := range []string{"rest", "pressed", "selected", "disabled"} {
		require.Contains(t, out, "chip/main "+name)
	}
	require.Contains(t, out, "not interactive")
}

func TestFamiliesListsOptions(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "families")
	require.NoError(t, err)
	require.Contains(t, out, "button\n  Pressable action with label and optional icon\n")
	require.Contains(t, out, "\n  --variant filled*|outlined|tinted|ghost|contrast\n")
	require.Contains(t, out, "\n  --icon <text>\n")
	require.Contains(t, out, "\nprogressbar\n")
}

func TestThemeShowRoundTrips(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "theme", "show", "--theme", "dark")
	require.NoError(t, err)
	require.Contains(t, out, "name: dark")

	path := filepath.Join(t.TempDir(), "dark.yaml")
	require.NoError(t, os.WriteFile(path, []byte(out), 0o600))

	validated, _, err := execute(t, "theme", "validate", path)
	require.NoError(t, err)
	require.Contains(t, validated, `theme "dark" is valid (dark)`)

	again, _, err := execute(t, "theme", "show", path)
	require.NoError(t, err)
	require.Equal(t, out, again)
}

func TestThemeValidateReportsField(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: bad\ndims:\n  dim1: 0.3\n  dim2: 0.5\n"), 0o600))

	_, _, err := execute(t, "theme", "validate", path)
	var verr *spkerrors.ValidationError
	require.True(t, errors.As(err, &verr), "got %T: %v", err, err)
	require.Equal(t, "dims.dim2", verr.Field)
}

func TestThemeFileDrivesResolution(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "blue.yaml")
	doc := "name: blue\ncolors:\n  main:\n    color: \"#0000ff\"\n    on_color: \"#ffffff\"\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	out, _, err := execute(t, "resolve", "tag", "--theme-file", path, "--json")
	require.NoError(t, err)

	var snap catalog.Snapshot
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	require.Equal(t, "blue", snap.Theme)
	require.Equal(t, "background", snap.Colors[0].Name)
	require.Equal(t, "#0000ff", snap.Colors[0].Hex)
}

func TestDebugLoggingGoesToStderr(t *testing.T) {
	t.Parallel()

	out, logs, err := execute(t, "resolve", "tag", "--json", "--log-level", "debug", "--log-human=false")
	require.NoError(t, err)
	require.True(t, json.Valid([]byte(out)))
	require.Contains(t, logs, `"component":"catalog"`)
	require.Contains(t, logs, `"message":"resolved"`)
}

func TestThemeList(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "theme", "list")
	require.NoError(t, err)
	require.Equal(t, "dark\nlight\n", out)
}

func TestThemeSchema(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "theme", "schema")
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &schema))
	require.Equal(t, "spark theme", schema["title"])
}

func TestUnknownFamilySuggestsClosest(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "resolve", "buton")
	require.ErrorContains(t, err, `did you mean "button"?`)
}
