// Package validate wraps go-playground/validator so every DTO is checked
// the same way before any service touches the store.
package validate

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/user/journal-go/apperror"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct validates a DTO against its `validate` tags and converts
// failures into a ValidationError naming the offending fields.
func Struct(s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.NewValidationError("Invalid request", err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	return apperror.NewValidationError("Invalid or missing fields: "+strings.Join(fields, ", "), err)
}
