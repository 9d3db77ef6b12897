package order

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields under the names clients send them as
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"form", "json"} {
			name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	// whitespace-only text counts as missing but is never rewritten
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// CreateRequest is a validated order submission. CustomerName and Orders come
// from the submitted form, TableNumber from the request path. Text fields are
// kept exactly as submitted.
type CreateRequest struct {
	CustomerName string `form:"customer_name" validate:"required,notblank"`
	Orders       string `form:"order_summary" validate:"required,notblank"`
	TableNumber  int    `json:"table_number"  validate:"gte=0"`
}

// Validate checks v against its validate tags. Rejected fields are returned as
// ValidationErrors.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{Field: fe.Field(), Reason: reason(fe)})
	}
	return out.OrNil()
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "gte":
		return fmt.Sprintf("must be %s or greater", fe.Param())
	default:
		return "is invalid"
	}
}
