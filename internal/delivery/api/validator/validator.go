// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "oilshare/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator validates request structs using their `validate` tags.
type Validator struct {
	validate *validator.Validate
}

// New returns a validator reporting fields by their JSON names.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "form", "param", "query"} {
			name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}

		return field.Name
	})

	return &Validator{validate: validate}
}

// Validate implements echo.Validator. Field failures become VALIDATION_FAILED.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, describe(fe))
	}

	return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; ")), "validate request")
}

func describe(fe validator.FieldError) string {
	if fe.Param() != "" {
		return fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param())
	}

	return fmt.Sprintf("%s must satisfy %s", fe.Field(), fe.Tag())
}
