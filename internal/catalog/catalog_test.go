package catalog

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/spark/internal/design"
	"github.com/alexisbeaulieu97/spark/internal/logger"
	"github.com/alexisbeaulieu97/spark/internal/state"
	"github.com/alexisbeaulieu97/spark/internal/theme"
	spkerrors "github.com/alexisbeaulieu97/spark/pkg/errors"
)

func TestBuiltinRegistersEveryFamily(t *testing.T) {
	t.Parallel()

	r := Builtin(logger.Nop())
	require.Equal(t, []string{"button", "checkbox", "chip", "progressbar", "rating", "slider", "tag"}, r.Names())
	require.Len(t, r.Families(), 7)
	require.Equal(t, "button", r.Families()[0].Name())
}

func TestEveryFamilyResolvesEveryOptionValue(t *testing.T) {
	t.Parallel()

	r := Builtin(nil)
	th := theme.Default()
	for _, f := range r.Families() {
		for _, opt := range f.Options() {
			for _, value := range opt.Values {
				for _, intent := range design.Intents() {
					snap, err := f.Resolve(th, Request{
						Intent:      intent,
						Options:     map[string]string{opt.Name: value},
						Interaction: state.Idle(),
					})
					require.NoError(t, err, "%s %s=%s", f.Name(), opt.Name, value)
					require.Equal(t, value, snap.Style[opt.Name])
					require.NotEmpty(t, snap.Colors)
					require.Len(t, snap.Swatches, len(snap.Colors))
				}
			}
		}
	}
}

func TestResolveButtonSnapshot(t *testing.T) {
	t.Parallel()

	r := Builtin(nil)
	th := theme.Default()

	snap, err := r.Resolve(th, "button", Request{
		Intent:      design.IntentMain,
		Options:     map[string]string{"variant": "Outlined", "icon": "+"},
		Interaction: state.Interaction{},
	})
	require.NoError(t, err)

	require.Equal(t, "light", snap.Theme)
	require.Equal(t, "main", snap.Intent)
	require.Equal(t, map[string]string{
		"variant":   "outlined",
		"size":      "medium",
		"shape":     "rounded",
		"alignment": "leading",
		"icon":      "+",
	}, snap.Style)
	require.Equal(t, float64(1), snap.Metrics["border_width"])
	require.False(t, snap.Interactive)
	require.Equal(t, th.Dims.Dim3, snap.Opacity)

	require.Equal(t, "foreground", snap.Colors[0].Name)
	require.Equal(t, theme.ValueOf(th.Colors.Main.Color.WithOpacity(th.Dims.Dim3)), snap.Colors[0].Value)
}

func TestSnapshotJSON(t *testing.T) {
	t.Parallel()

	snap, err := Builtin(nil).Resolve(theme.Default(), "tag", Request{Intent: design.IntentDanger, Interaction: state.Idle()})
	require.NoError(t, err)

	data, err := json.Marshal(snap)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "tag", decoded["family"])
	require.NotContains(t, decoded, "metrics")
	require.NotContains(t, decoded, "Swatches")

	colors := decoded["colors"].([]any)
	first := colors[0].(map[string]any)
	require.Equal(t, "background", first["name"])
	require.Equal(t, theme.ValueOf(theme.Default().Colors.Feedback.Error.Color).Hex, first["hex"])
	require.Equal(t, 1.0, first["opacity"])
}

func TestResolveRejectsBadInput(t *testing.T) {
	t.Parallel()

	r := Builtin(nil)
	th := theme.Default()

	_, err := r.Resolve(th, "toggle", Request{})
	var verr *spkerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "family", verr.Field)

	_, err = r.Resolve(th, "tag", Request{Options: map[string]string{"size": "large"}})
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "size", verr.Field)

	_, err = r.Resolve(th, "chip", Request{Options: map[string]string{"variant": "filled"}})
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "variant", verr.Field)

	_, err = r.Resolve(nil, "chip", Request{})
	require.Error(t, err)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	t.Parallel()

	r := NewRegistry(nil)
	require.NoError(t, r.Register(tagFamily()))
	require.Error(t, r.Register(tagFamily()))
	require.Error(t, r.Register(nil))
}

func TestGetSuggestsClosestFamily(t *testing.T) {
	t.Parallel()

	r := Builtin(nil)

	tests := []struct {
		name    string
		input   string
		suggest string
	}{
		{name: "missing letter", input: "chekbox", suggest: `did you mean "checkbox"?`},
		{name: "case", input: "Slider", suggest: `did you mean "slider"?`},
		{name: "prefix", input: "prog", suggest: `did you mean "progressbar"?`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := r.Get(tt.input)
			require.ErrorContains(t, err, tt.suggest)
		})
	}

	_, err := r.Get("zzz")
	require.Error(t, err)
	require.NotContains(t, err.Error(), "did you mean")
}
