// Package validator adapts go-playground/validator to Echo and reports
// failures as per-field messages.
package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	domainerrors "vendorhub/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var (
	phonePattern      = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	postalCodePattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	gstinPattern      = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds a validator with the phone, postalcode and gstin tags registered
// and JSON field names used in messages.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "param", "query"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}

		return field.Name
	})

	mustRegister(v, "phone", phonePattern)
	mustRegister(v, "postalcode", postalCodePattern)
	mustRegister(v, "gstin", gstinPattern)

	return &CustomValidator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, pattern *regexp.Regexp) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// Validate returns a VALIDATION_FAILED error whose details list one message per field.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, FieldMessage(fe))
	}

	return domainerrors.NewValidationError(messages)
}

// FieldMessage renders one failed rule as a readable sentence.
func FieldMessage(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required", "required_without":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s item(s)", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	case "uuid", "uuid4":
		return fmt.Sprintf("%s must be a valid UUID", field)
	case "phone":
		return fmt.Sprintf("%s must be a valid phone number", field)
	case "postalcode":
		return fmt.Sprintf("%s must be a valid postal code", field)
	case "gstin":
		return fmt.Sprintf("%s must be a valid GST number", field)
	case "numeric":
		return fmt.Sprintf("%s must contain digits only", field)
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters long", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
