package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactForm struct {
	Name    string `validate:"required,notblank"`
	Email   string `validate:"required,email"`
	Message string `validate:"required,max=10"`
	Website string `validate:"omitempty,url"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

func TestFormatValidationErrors(t *testing.T) {
	v := newValidator()

	err := v.Struct(contactForm{Name: "   ", Email: "not-an-email", Message: "this message is too long", Website: "not a url"})
	require.Error(t, err)

	messages := FormatValidationErrors(err)
	assert.ElementsMatch(t, []string{
		"Name: must not be blank",
		"Email: must be a valid email address",
		"Message: must be at most 10 characters",
		"Website: must be a valid URL",
	}, messages)
}

func TestFormatValidationErrorsRequired(t *testing.T) {
	v := newValidator()

	err := v.Struct(contactForm{})
	require.Error(t, err)

	messages := FormatValidationErrors(err)
	assert.Contains(t, messages, "Name: is required")
	assert.Contains(t, messages, "Email: is required")
	assert.Contains(t, messages, "Message: is required")
	assert.Len(t, messages, 3, "empty website is allowed")
}

func TestFormatValidationErrorsNonValidation(t *testing.T) {
	messages := FormatValidationErrors(errors.New("unexpected EOF"))
	assert.Equal(t, []string{"unexpected EOF"}, messages)
}

func TestNotBlank(t *testing.T) {
	v := newValidator()
	for _, s := range []string{"Ada", "  padded  "} {
		assert.NoError(t, v.Var(s, "notblank"), s)
	}
	for _, s := range []string{"", "   ", "\t\n"} {
		assert.Error(t, v.Var(s, "notblank"), s)
	}
}

func TestFormatCamelCase(t *testing.T) {
	assert.Equal(t, "Created At", getFieldLabel("CreatedAt"))
	assert.Equal(t, "GitHub URL", getFieldLabel("GitHub"))
}
