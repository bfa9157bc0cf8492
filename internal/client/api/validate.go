package api

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// validateInput runs structural checks on a request body before any I/O.
func validateInput(v any) error {
	if err := validate.Struct(v); err != nil {
		return &APIError{Err: ErrValidation, Message: describeValidation(err), Cause: err}
	}
	return nil
}

func requireID(name, id string) error {
	if strings.TrimSpace(id) == "" {
		return &APIError{Err: ErrValidation, Message: name + " is required"}
	}
	return nil
}
