package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Rakhulsr/figurine-shop/app/helpers"
	"github.com/Rakhulsr/figurine-shop/app/repositories"
	"github.com/go-playground/validator/v10"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = repositories.ErrNotFound
	ErrCategoryInUse      = errors.New("category is still used by products")
	ErrInvalidTransition  = errors.New("invalid order status transition")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNoCredentials      = errors.New("admin credentials are not configured")
	ErrAlreadyStarted     = errors.New("sync already started")
)

// ValidationError lists the offending fields; it matches ErrValidation with errors.Is.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, e.Fields[k])
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, " "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func fieldError(field, msg string) error {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func validateStruct(v *validator.Validate, s interface{}) error {
	if err := v.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return &ValidationError{Fields: helpers.FormatValidationErrors(verrs)}
		}
		return err
	}
	return nil
}
