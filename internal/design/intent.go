// Package design holds the closed selector sets shared by every component
// family. Selectors carry no color or geometry; resolution maps them onto a
// theme.
package design

import (
	"fmt"
	"strings"

	spkerrors "github.com/alexisbeaulieu97/spark/pkg/errors"
)

// Intent is the semantic purpose of a component instance.
type Intent int

const (
	IntentMain Intent = iota
	IntentSupport
	IntentAccent
	IntentBasic
	IntentSuccess
	IntentAlert
	IntentDanger
	IntentInfo
	IntentNeutral
	IntentSurface
)

// Intents lists every intent in declaration order.
func Intents() []Intent {
	return []Intent{
		IntentMain, IntentSupport, IntentAccent, IntentBasic, IntentSuccess,
		IntentAlert, IntentDanger, IntentInfo, IntentNeutral, IntentSurface,
	}
}

func (i Intent) String() string {
	switch i {
	case IntentMain:
		return "main"
	case IntentSupport:
		return "support"
	case IntentAccent:
		return "accent"
	case IntentBasic:
		return "basic"
	case IntentSuccess:
		return "success"
	case IntentAlert:
		return "alert"
	case IntentDanger:
		return "danger"
	case IntentInfo:
		return "info"
	case IntentNeutral:
		return "neutral"
	case IntentSurface:
		return "surface"
	}
	return fmt.Sprintf("Intent(%d)", int(i))
}

// ParseIntent maps a name back to its Intent.
func ParseIntent(name string) (Intent, error) {
	return Parse("intent", name, Intents())
}

// Parse finds the value of a closed set whose String matches name,
// case-insensitively.
func Parse[T fmt.Stringer](field, name string, values []T) (T, error) {
	wanted := strings.ToLower(strings.TrimSpace(name))
	for _, v := range values {
		if v.String() == wanted {
			return v, nil
		}
	}
	var zero T
	return zero, spkerrors.NewValidationError(field, fmt.Sprintf("unknown value %q (want one of %s)", name, Names(values)), nil)
}

// Names joins the String form of every value.
func Names[T fmt.Stringer](values []T) string {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.String()
	}
	return strings.Join(names, ", ")
}

// Unknown builds the panic value for a selector outside its closed set.
// Exhaustive switches end with panic(design.Unknown(...)) after the last case.
func Unknown(kind string, value fmt.Stringer) *spkerrors.ContractViolation {
	return spkerrors.NewContractViolation("unknown %s %s", kind, value)
}
