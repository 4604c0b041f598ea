package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	elevateerrors "github.com/alexisbeaulieu97/elevate/pkg/errors"
)

// Validate checks every field of cfg and reports all failures together.
func Validate(cfg *Config) error {
	if cfg == nil {
		return elevateerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if cfg.Touch.ScrollSlop > cfg.Touch.CellHeight*4 {
		return elevateerrors.NewValidationError("touch.scroll_slop",
			fmt.Sprintf("must be at most four rows (%g)", cfg.Touch.CellHeight*4), nil)
	}
	return nil
}

// convertValidationError normalizes validator errors into elevate validation errors.
func convertValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return elevateerrors.NewValidationError("config", err.Error(), err)
	}

	out := make(elevateerrors.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, &elevateerrors.ValidationError{
			Field:   fieldPath(fe),
			Message: messageFor(fe),
			Err:     fe,
		})
	}
	return out
}

// fieldPath drops the root struct name: "Config.touch.threshold" becomes
// "touch.threshold".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "log_level":
		return fmt.Sprintf("unknown log level %q (want trace, debug, info, warn or error)", fe.Value())
	case "theme_mode":
		return fmt.Sprintf("unknown theme mode %q (want auto, light or dark)", fe.Value())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}
