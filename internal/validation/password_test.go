package validation_test

import (
	"testing"

	"blogapi/internal/validation"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	// Acceptable passwords
	assert.NoError(t, validation.ValidatePassword("Passw0rd"))
	assert.NoError(t, validation.ValidatePassword("12345678"))
	assert.NoError(t, validation.ValidatePassword("long enough with 1 digit"))

	// Too short
	err := validation.ValidatePassword("Pass1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "at least 8 characters")

	// Long enough but no digit
	err = validation.ValidatePassword("password")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "at least one digit")

	// Empty
	err = validation.ValidatePassword("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "at least 8 characters")
}
