package helpers

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
)

type contextKey string

const (
	ContextKeyAdmin contextKey = "adminUsername"
)

func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := lowerFirst(err.Field())
		switch err.Tag() {
		case "required":
			errorMessages[field] = fmt.Sprintf("%s is required.", err.Field())
		case "email":
			errorMessages[field] = fmt.Sprintf("%s must be a valid email address.", err.Field())
		case "url":
			errorMessages[field] = fmt.Sprintf("%s must be a valid URL.", err.Field())
		case "oneof":
			errorMessages[field] = fmt.Sprintf("%s must be one of: %s.", err.Field(), err.Param())
		case "min":
			errorMessages[field] = fmt.Sprintf("%s must be at least %s.", err.Field(), err.Param())
		case "max":
			errorMessages[field] = fmt.Sprintf("%s must be at most %s.", err.Field(), err.Param())
		case "gt":
			errorMessages[field] = fmt.Sprintf("%s must be greater than %s.", err.Field(), err.Param())
		default:
			errorMessages[field] = fmt.Sprintf("%s failed the %s check.", err.Field(), err.Tag())
		}
	}
	return errorMessages
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func PasswordCompare(hashPass string, password []byte) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashPass), password)
	if err != nil {
		log.Printf("PasswordCompare: password does not match or error: %v", err)
		return false
	}
	return true
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

func GenerateSlug(s string) string {
	return slug.Make(s)
}
