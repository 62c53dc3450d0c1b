// Package validation holds the go-playground validator shared by the HTTP
// layer and the route sources.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/classhub/navigation-service/internal/core/domain"
)

// New returns a validator with the navigation-specific tags registered.
// Field names in errors are taken from the json tag, then the query tag.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(fieldName)
	_ = v.RegisterValidation("icon", func(fl validator.FieldLevel) bool {
		return domain.Icon(fl.Field().String()).Known()
	})
	// usertype accepts any case, the same rule ParseUserType applies to
	// the token role claim.
	_ = v.RegisterValidation("usertype", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseUserType(fl.Field().String())
		return err == nil
	})
	return v
}

func fieldName(f reflect.StructField) string {
	for _, key := range []string{"json", "query"} {
		name, _, _ := strings.Cut(f.Tag.Get(key), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// Routes validates every record of a route table. The returned error wraps
// domain.ErrInvalidRouteTable and lists each offending record by index.
func Routes(v *validator.Validate, routes []domain.Route) error {
	if len(routes) == 0 {
		return domain.ErrRouteTableEmpty
	}
	var msgs []string
	for i := range routes {
		if err := v.Struct(&routes[i]); err != nil {
			msgs = append(msgs, fmt.Sprintf("route[%d]: %s", i, Message(err)))
		}
	}
	if len(msgs) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidRouteTable, strings.Join(msgs, "; "))
	}
	return nil
}

// Message flattens validator errors into one human-readable string.
func Message(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, FieldError(fe))
	}
	return strings.Join(msgs, "; ")
}

// FieldError converts a single ValidationError into a human-readable message.
func FieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "startswith":
		return fmt.Sprintf("%s must start with %q", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "usertype":
		return fmt.Sprintf("%s %q is not a known user type", field, fe.Value())
	case "icon":
		return fmt.Sprintf("%s %q is not a known icon", field, fe.Value())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
