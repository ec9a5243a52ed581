package rating

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/spark/internal/design"
	"github.com/alexisbeaulieu97/spark/internal/theme"
)

func TestResolveIsTotal(t *testing.T) {
	t.Parallel()

	for _, intent := range design.Intents() {
		for _, size := range Sizes() {
			require.NotPanics(t, func() { Resolve(theme.Default(), intent, Style{Size: size}) })
		}
	}
}

func TestColors(t *testing.T) {
	t.Parallel()

	th := theme.Default()
	set := ColorSet(th, design.IntentAlert)
	require.True(t, theme.Equal(th.Colors.Feedback.Alert.Color, set.Rest.Fill))
	require.True(t, theme.Equal(th.Colors.Base.OnSurface.WithOpacity(th.Dims.Dim3), set.Rest.Stroke))
	require.True(t, theme.Equal(th.Colors.States.Alert.Pressed, set.Pressed.Fill))
	require.True(t, theme.Equal(set.Rest.Stroke, set.Pressed.Stroke))
}

func TestMetrics(t *testing.T) {
	t.Parallel()

	th := theme.Default()
	tests := []struct {
		size         Size
		star, border float64
	}{
		{SizeSmall, 12, 1},
		{SizeMedium, 20, 2},
		{SizeLarge, 40, 3},
	}

	for _, tt := range tests {
		r := Resolve(th, design.IntentMain, Style{Size: tt.size})
		require.Equal(t, tt.star, r.Normal.Rest.StarSize, tt.size.String())
		require.Equal(t, tt.border, r.Normal.Rest.BorderWidth, tt.size.String())
		require.Equal(t, th.Spacing.Small, r.Normal.Rest.Spacing)
	}
}

func TestFills(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value float64
		count int
		mode  FillMode
		want  []float64
	}{
		{name: "half rounds up", value: 2.3, count: 5, mode: FillHalf, want: []float64{1, 1, 0.5, 0, 0}},
		{name: "half rounds down", value: 2.2, count: 5, mode: FillHalf, want: []float64{1, 1, 0, 0, 0}},
		{name: "full", value: 3.6, count: 5, mode: FillFull, want: []float64{1, 1, 1, 1, 0}},
		{name: "exact", value: 1.25, count: 3, mode: FillExact, want: []float64{1, 0.25, 0}},
		{name: "clamped high", value: 9, count: 3, mode: FillExact, want: []float64{1, 1, 1}},
		{name: "clamped low", value: -2, count: 2, mode: FillHalf, want: []float64{0, 0}},
		{name: "nan", value: math.NaN(), count: 2, mode: FillFull, want: []float64{0, 0}},
		{name: "no stars", value: 3, count: 0, mode: FillFull, want: []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, Fills(tt.value, tt.count, tt.mode))
		})
	}
}

func TestViewModelPressAndResize(t *testing.T) {
	t.Parallel()

	th := theme.Default()
	vm := NewViewModel(th, design.IntentMain, SizeSmall)
	vm.SetPressed(true)

	current, _ := vm.Current()
	require.True(t, theme.Equal(th.Colors.States.Main.Pressed, current.Attributes.Colors.Fill))

	vm.SetSize(SizeLarge)
	current, _ = vm.Current()
	require.Equal(t, float64(40), current.Attributes.StarSize)
	require.True(t, theme.Equal(th.Colors.States.Main.Pressed, current.Attributes.Colors.Fill))
}

func TestParse(t *testing.T) {
	t.Parallel()

	m, err := ParseFillMode("exact")
	require.NoError(t, err)
	require.Equal(t, FillExact, m)

	s, err := ParseSize("medium")
	require.NoError(t, err)
	require.Equal(t, SizeMedium, s)

	require.Panics(t, func() { Fills(1, 1, FillMode(7)) })
}
