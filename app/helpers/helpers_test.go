package helpers

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatValidationErrors(t *testing.T) {
	type form struct {
		Name  string `validate:"required"`
		Email string `validate:"omitempty,email"`
	}
	err := validator.New().Struct(form{Email: "nope"})
	require.Error(t, err)

	msgs := FormatValidationErrors(err.(validator.ValidationErrors))
	assert.Equal(t, "Name is required.", msgs["name"])
	assert.Equal(t, "Email must be a valid email address.", msgs["email"])
}

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.True(t, PasswordCompare(hash, []byte("s3cret-pass")))
	assert.False(t, PasswordCompare(hash, []byte("wrong")))
}

func TestGenerateSlug(t *testing.T) {
	assert.Equal(t, "red-dragon-statue", GenerateSlug("Red Dragon  Statue!"))
}
