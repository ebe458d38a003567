package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.domain.co",
		"user+tag@example.io",
	}
	for _, email := range valid {
		assert.NoError(t, ValidateEmail(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@no-local-part.com",
		"user@",
		"user@nodot",
		strings.Repeat("a", 250) + "@example.com",
	}
	for _, email := range invalid {
		err := ValidateEmail(email)
		assert.Error(t, err, email)
		assert.Equal(t, "Please include a valid email", err.Error())
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("123456"))
	assert.NoError(t, ValidatePassword("a-much-longer-password"))

	err := ValidatePassword("12345")
	assert.Error(t, err)
	assert.Equal(t, "Please enter a password with 6 or more characters", err.Error())

	assert.Error(t, ValidatePassword(strings.Repeat("x", 129)))
}
