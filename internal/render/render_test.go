package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/spark/internal/catalog"
	"github.com/alexisbeaulieu97/spark/internal/components/button"
	"github.com/alexisbeaulieu97/spark/internal/design"
	"github.com/alexisbeaulieu97/spark/internal/icon"
	"github.com/alexisbeaulieu97/spark/internal/state"
	"github.com/alexisbeaulieu97/spark/internal/theme"
)

func TestColorFlattensOverBackground(t *testing.T) {
	t.Parallel()

	th := theme.Default()
	r := New(&bytes.Buffer{}, th, false)

	require.Equal(t, "#0000ff", string(r.Color(theme.MustHex("#0000ff"))))
	require.Equal(t, "#ffffff", string(r.Color(theme.Clear)))
	require.Equal(t, "#8080ff", string(r.Color(theme.MustHex("#0000ff").WithOpacity(0.5))))
}

func TestPlainSwatches(t *testing.T) {
	t.Parallel()

	r := New(&bytes.Buffer{}, theme.Default(), true)
	out := r.Swatches([]theme.Swatch{
		{Name: "fill", Token: theme.MustHex("#112233")},
		{Name: "stroke", Token: theme.MustHex("#112233").WithOpacity(0.4)},
	})

	require.Equal(t, "fill    #112233\nstroke  #112233@40%", out)
	require.True(t, r.Plain())
}

func TestSnapshot(t *testing.T) {
	t.Parallel()

	th := theme.Default()
	snap, err := catalog.Builtin(nil).Resolve(th, "rating", catalog.Request{Intent: design.IntentMain, Interaction: state.Interaction{}})
	require.NoError(t, err)

	out := New(&bytes.Buffer{}, th, true).Snapshot("disabled", snap)
	lines := strings.Split(out, "\n")
	require.Equal(t, "disabled  opacity 0.40, not interactive", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "fill"))
	require.Equal(t, "border_width=2 spacing=4 star_size=20", lines[len(lines)-1])
}

func TestButton(t *testing.T) {
	t.Parallel()

	th := theme.Default()
	style := button.DefaultStyle()
	style.Variant = button.VariantOutlined
	style.Icon = mo.Some(icon.FromGlyph("+"))
	a := button.Resolve(th, design.IntentMain, style).Normal.Rest

	plain := New(&bytes.Buffer{}, th, true)
	require.Equal(t, "[ + Add ]", plain.Button("Add", a))

	a.Alignment = button.AlignmentTrailingImage
	require.Equal(t, "[ Add + ]", plain.Button("Add", a))

	styled := New(&bytes.Buffer{}, th, false).Button("Add", a)
	require.Contains(t, styled, "Add +")
	require.Len(t, strings.Split(styled, "\n"), 3)
}

func TestCells(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, cells(0))
	require.Equal(t, 1, cells(4))
	require.Equal(t, 2, cells(16))
	require.Equal(t, 3, cells(24))
}
