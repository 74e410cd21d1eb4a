package services

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"diancan/internal/repositories"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrNotFound is returned when the referenced item or order does not exist.
	ErrNotFound = repositories.ErrNotFound
	// ErrConflict is returned when an item is favorited twice.
	ErrConflict = errors.New("conflict")
)

// ValidationError reports malformed or missing input. Fields maps the JSON
// field name to the reason it was rejected.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("%s (%s)", e.Message, strings.Join(parts, "; "))
}

func newValidationError(message, field, reason string) *ValidationError {
	return &ValidationError{Message: message, Fields: map[string]string{field: reason}}
}

// newValidator returns a validator that reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// validateStruct runs the struct tags of s and converts failures into a ValidationError.
func validateStruct(v *validator.Validate, s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("failed to validate request: %w", err)
	}

	fields := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		// Drop the root struct name: "CreateOrderRequest.items[0].quantity" -> "items[0].quantity".
		field := e.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		fields[field] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return &ValidationError{Message: "Validation failed", Fields: fields}
}
