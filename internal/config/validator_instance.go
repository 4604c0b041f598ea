package config

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/elevate/internal/components"
	"github.com/alexisbeaulieu97/elevate/internal/logger"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report fields by their YAML names.
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("log_level", func(fl validator.FieldLevel) bool {
			level := fl.Field().String()
			if level == "" {
				return true
			}
			_, err := logger.ParseLevel(level)
			return err == nil
		})

		_ = v.RegisterValidation("theme_mode", func(fl validator.FieldLevel) bool {
			_, err := components.ParseThemeMode(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}
