package validation_test

import (
	"errors"
	"testing"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mtop_registry/internal/validation"
)

type sampleInput struct {
	Name  string `json:"name" binding:"required,min=3"`
	Email string `json:"email" binding:"required,email"`
}

func validate(input any) error {
	v := binding.Validator.Engine().(*validator.Validate)
	return v.Struct(input)
}

func TestMessagesUseJSONFieldNames(t *testing.T) {
	err := validate(sampleInput{})
	require.Error(t, err)

	fields := validation.Messages(err)
	assert.Equal(t, "The name field is required.", fields["name"])
	assert.Equal(t, "The email field is required.", fields["email"])
}

func TestMessagesPerTag(t *testing.T) {
	err := validate(sampleInput{Name: "ab", Email: "not-an-email"})
	require.Error(t, err)

	fields := validation.Messages(err)
	assert.Equal(t, "The name must be at least 3 characters.", fields["name"])
	assert.Equal(t, "Please enter a valid email address.", fields["email"])
}

func TestMessagesNonValidatorError(t *testing.T) {
	fields := validation.Messages(errors.New("unexpected EOF"))
	assert.Equal(t, map[string]string{"request": "The request body is invalid."}, fields)
}

func TestParseDate(t *testing.T) {
	d, err := validation.ParseDate("2026-03-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), d)

	_, err = validation.ParseDate("03/05/2026")
	assert.Error(t, err)
}

func TestInFuture(t *testing.T) {
	assert.True(t, validation.InFuture(time.Now().AddDate(0, 0, 2)))
	assert.False(t, validation.InFuture(time.Now().AddDate(0, 0, -2)))
}
