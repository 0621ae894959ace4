// Package validator wraps go-playground/validator with the relay's error
// format: every failed rule becomes one line joined under ErrValidationFailed.
//
// Fields tagged `secret:"true"` never have their value rendered in an error.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error of the chain returned on failure.
var ErrValidationFailed = errors.New("struct validation failed")

var validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

const (
	errStringFormat       = "'%s': value '%v' does not meet the requirements for the '%s' validation"
	secretErrStringFormat = "'%s': value [redacted] does not meet the requirements for the '%s' validation"
)

// isSecret reports whether the field at namespace (e.g. "Config.Origin.Password")
// is tagged as secret in root.
func isSecret(root reflect.Type, namespace string) bool {
	parts := strings.Split(namespace, ".")
	if len(parts) < 2 {
		return false
	}

	t := root
	for _, name := range parts[1:] {
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct {
			return false
		}

		// Slice and map elements show up as "Field[0]".
		if i := strings.IndexByte(name, '['); i >= 0 {
			name = name[:i]
		}

		field, ok := t.FieldByName(name)
		if !ok {
			return false
		}
		if field.Tag.Get("secret") == "true" {
			return true
		}

		t = field.Type
	}

	return false
}

func formatError(root reflect.Type, err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, fe := range validationErrors {
		if root != nil && isSecret(root, fe.StructNamespace()) {
			errs = append(errs, fmt.Errorf(secretErrStringFormat, fe.Field(), fe.Tag()))
			continue
		}

		errs = append(errs, fmt.Errorf(errStringFormat, fe.Field(), fe.Value(), fe.Tag()))
	}

	return errors.Join(errs...)
}

// Validate checks v against its `validate` tags.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(reflect.TypeOf(v), err)
	}

	return nil
}
