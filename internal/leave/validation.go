package leave

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator checks the shape of lookup requests before they reach the store.
// serviceCode must match ^[A-Za-z0-9]{8,20}$ and idNumber ^[0-9]{10}$.
type Validator struct {
	validate *validator.Validate
}

// NewValidator constructs a Validator reporting JSON field names.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Validate returns a *ValidationError describing the first invalid field.
func (v *Validator) Validate(req LookupRequest) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Message: "invalid request"}
	}
	fe := fieldErrs[0]
	return &ValidationError{Field: fe.Field(), Message: fieldMessage(fe)}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "serviceCode":
		if fe.Tag() == "required" {
			return "serviceCode is required"
		}
		return "serviceCode must be 8 to 20 letters or digits"
	case "idNumber":
		if fe.Tag() == "required" {
			return "idNumber is required"
		}
		return "idNumber must be exactly 10 digits"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
