package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("mapping values are not allowed")
	err := NewParseError("themes/dark.yaml", 7, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "themes/dark.yaml", parseErr.Path)
	require.Equal(t, 7, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "themes/dark.yaml:7")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("missing.yaml", 0, stdErrors.New("no such file"))
	require.Equal(t, "parse error: missing.yaml: no such file", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("dims.dim3", "must be lower than dims.dim2", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "dims.dim3", validationErr.Field)
	require.Equal(t, "validation error: dims.dim3: must be lower than dims.dim2", err.Error())
}

func TestValidationErrorWithoutField(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("empty document")
	err := NewValidationError("", "theme document is empty", underlying)
	require.Equal(t, "validation error: theme document is empty", err.Error())
	require.True(t, stdErrors.Is(err, underlying))
}

func TestViolationPanicsWithContractViolation(t *testing.T) {
	t.Parallel()

	defer func() {
		recovered := recover()
		require.NotNil(t, recovered)

		violation, ok := recovered.(*ContractViolation)
		require.True(t, ok, "expected *ContractViolation, got %T", recovered)
		require.Equal(t, "unknown intent 42", violation.Message)
		require.Equal(t, "contract violation: unknown intent 42", violation.Error())
	}()

	Violation("unknown intent %d", 42)
}
