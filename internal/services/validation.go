package services

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	draftValidatorOnce sync.Once
	draftValidator     *validator.Validate
)

func draftValidation() *validator.Validate {
	draftValidatorOnce.Do(func() {
		draftValidator = validator.New(validator.WithRequiredStructEnabled())
		draftValidator.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})
	})
	return draftValidator
}

func validateDraft(draft any) error {
	err := draftValidation().Struct(draft)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return newValidationError("", "invalid input")
	}

	first := fieldErrors[0]
	switch first.Tag() {
	case "required":
		return requiredFieldError(first.Field())
	case "oneof":
		return newValidationError(first.Field(), "invalid %s value", first.Field())
	case "gte", "lte", "min", "max":
		return newValidationError(first.Field(), "%s is out of range", first.Field())
	default:
		return newValidationError(first.Field(), "invalid %s", first.Field())
	}
}
