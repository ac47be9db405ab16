package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type emailForm struct {
	Email string `json:"email" validate:"required,simple_email"`
	Name  string `json:"name" validate:"required"`
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&emailForm{})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "name")
	assert.Equal(t, "This field is required", vErr.Errors["name"])
}

func TestSimpleEmailRule(t *testing.T) {
	v := New()

	valid := []string{
		"user@example.com",
		"first.last@sub.domain.org",
		"weird+tag@host.io",
	}
	for _, email := range valid {
		assert.NoError(t, v.Validate(&emailForm{Email: email, Name: "x"}), email)
	}

	invalid := []string{
		"plainaddress",
		"missing@tld",
		"no at sign.com",
		"two@@example.com",
		"spaces in@example.com",
	}
	for _, email := range invalid {
		err := v.Validate(&emailForm{Email: email, Name: "x"})
		require.Error(t, err, email)
		vErr, ok := err.(*ValidationError)
		require.True(t, ok, email)
		assert.Equal(t, "Invalid email format", vErr.Errors["email"], email)
	}
}
