package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	sdkerrors "github.com/hypernetlabs/galileo-go/internal/errors"
)

// newValidator returns a validator that reports fields by their JSON name.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateRequest checks req against its validate tags and converts the first
// failure into a validation AppError naming the field.
func validateRequest(v *validator.Validate, op string, req any) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return sdkerrors.ValidationField(fe.Field(), op+": "+describeFieldError(fe))
	}
	return sdkerrors.Wrap(err, sdkerrors.ErrCodeValidation, op+": invalid request")
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fe.Field() + " must be at least " + fe.Param()
	case "max":
		return fe.Field() + " must be at most " + fe.Param()
	default:
		return fe.Field() + " failed " + fe.Tag() + " validation"
	}
}

// requireID returns a validation error when id is blank.
func requireID(op, field, id string) error {
	if strings.TrimSpace(id) == "" {
		return sdkerrors.ValidationField(field, op+": "+field+" is required")
	}
	return nil
}

// orDefault returns def when n is unset.
func orDefault(n, def int) int {
	if n <= 0 {
		return def
	}
	return n
}
