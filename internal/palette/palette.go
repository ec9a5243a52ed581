// Package palette maps an intent onto the theme colors every component
// family builds its tables from.
package palette

import (
	"github.com/alexisbeaulieu97/spark/internal/design"
	"github.com/alexisbeaulieu97/spark/internal/theme"
)

// Intent is the color set selected by one intent.
type Intent struct {
	Color            theme.ColorToken
	OnColor          theme.ColorToken
	Container        theme.ColorToken
	OnContainer      theme.ColorToken
	Pressed          theme.ColorToken
	ContainerPressed theme.ColorToken
}

func fromFamily(f theme.ColorFamily, s theme.StateColors) Intent {
	return Intent{
		Color:            f.Color,
		OnColor:          f.OnColor,
		Container:        f.Container,
		OnContainer:      f.OnContainer,
		Pressed:          s.Pressed,
		ContainerPressed: s.ContainerPressed,
	}
}

// For returns the colors of intent in c.
func For(c theme.Colors, intent design.Intent) Intent {
	switch intent {
	case design.IntentMain:
		return fromFamily(c.Main, c.States.Main)
	case design.IntentSupport:
		return fromFamily(c.Support, c.States.Support)
	case design.IntentAccent:
		return fromFamily(c.Accent, c.States.Accent)
	case design.IntentBasic:
		return fromFamily(c.Basic, c.States.Basic)
	case design.IntentSuccess:
		return fromFamily(c.Feedback.Success, c.States.Success)
	case design.IntentAlert:
		return fromFamily(c.Feedback.Alert, c.States.Alert)
	case design.IntentDanger:
		return fromFamily(c.Feedback.Error, c.States.Error)
	case design.IntentInfo:
		return fromFamily(c.Feedback.Info, c.States.Info)
	case design.IntentNeutral:
		return fromFamily(c.Feedback.Neutral, c.States.Neutral)
	case design.IntentSurface:
		return Intent{
			Color:            c.Base.Surface,
			OnColor:          c.Base.OnSurface,
			Container:        c.Base.SurfaceInverse,
			OnContainer:      c.Base.OnSurfaceInverse,
			Pressed:          c.States.Surface.Pressed,
			ContainerPressed: c.States.Surface.ContainerPressed,
		}
	}
	panic(design.Unknown("intent", intent))
}
