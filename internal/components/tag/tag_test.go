package tag

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/spark/internal/design"
	"github.com/alexisbeaulieu97/spark/internal/theme"
)

func TestResolveIsTotalAndStatic(t *testing.T) {
	t.Parallel()

	th := theme.Dark()
	for _, intent := range design.Intents() {
		for _, variant := range Variants() {
			r := Resolve(th, intent, Style{Variant: variant})
			for i, sw := range r.Normal.Rest.Swatches() {
				require.True(t, theme.Equal(sw.Token, r.Normal.Pressed.Swatches()[i].Token), "%s/%s %s", intent, variant, sw.Name)
			}
		}
	}
}

func TestDangerOutlinedScenario(t *testing.T) {
	t.Parallel()

	th := theme.Default()
	vm := NewViewModel(th, design.IntentDanger, VariantOutlined)

	current, ok := vm.Current()
	require.True(t, ok)
	c := current.Attributes
	require.True(t, theme.Equal(th.Colors.Base.Surface, c.Background))
	require.True(t, theme.Equal(th.Colors.Feedback.Error.Color, c.Border))
	require.True(t, theme.Equal(th.Colors.Feedback.Error.Color, c.Foreground))
}

func TestVariants(t *testing.T) {
	t.Parallel()

	th := theme.Default()
	main := th.Colors.Main

	filled := ColorsFor(th, design.IntentMain, VariantFilled)
	require.True(t, theme.Equal(main.Color, filled.Background))
	require.True(t, theme.Equal(main.Color, filled.Border))
	require.True(t, theme.Equal(main.OnColor, filled.Foreground))

	tinted := ColorsFor(th, design.IntentMain, VariantTinted)
	require.True(t, theme.Equal(main.Container, tinted.Background))
	require.True(t, theme.Equal(main.Container, tinted.Border))
	require.True(t, theme.Equal(main.OnContainer, tinted.Foreground))
}

func TestPressedTagKeepsRestColors(t *testing.T) {
	t.Parallel()

	th := theme.Default()
	vm := NewViewModel(th, design.IntentMain, VariantFilled)
	vm.SetPressed(true)

	current, _ := vm.Current()
	require.True(t, theme.Equal(th.Colors.Main.Color, current.Attributes.Background))

	vm.SetVariant(VariantTinted)
	current, _ = vm.Current()
	require.True(t, theme.Equal(th.Colors.Main.Container, current.Attributes.Background))
}

func TestParseVariant(t *testing.T) {
	t.Parallel()

	v, err := ParseVariant("outlined")
	require.NoError(t, err)
	require.Equal(t, VariantOutlined, v)

	_, err = ParseVariant("ghost")
	require.Error(t, err)
}
