package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("mapping values are not allowed in this context")
	err := NewParseError("elevate.yaml", 7, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "elevate.yaml", parseErr.Path)
	require.Equal(t, 7, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: elevate.yaml:7: mapping values are not allowed in this context", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("elevate.yaml", 0, stdErrors.New("EOF"))
	require.Equal(t, "parse error: elevate.yaml: EOF", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("touch.threshold", "must be greater than 0", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "touch.threshold", validationErr.Field)
	require.Equal(t, "validation error: touch.threshold: must be greater than 0", err.Error())
}

func TestValidationErrorsAggregate(t *testing.T) {
	t.Parallel()

	var errs ValidationErrors
	require.Empty(t, errs.Error())

	errs = append(errs,
		&ValidationError{Field: "touch.threshold", Message: "must be greater than 0"},
		&ValidationError{Field: "theme.mode", Message: "must be one of auto, light, dark"},
	)

	var err error = errs
	require.Contains(t, err.Error(), "2 validation errors")
	require.Equal(t, []string{"touch.threshold", "theme.mode"}, errs.Fields())

	var first *ValidationError
	require.ErrorAs(t, err, &first)
	require.Equal(t, "touch.threshold", first.Field)

	require.Equal(t, errs[0].Error(), errs[:1].Error())
}

func TestNilReceivers(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	require.Empty(t, parseErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Empty(t, validationErr.Error())
	require.Nil(t, validationErr.Unwrap())
}
