package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// simpleEmailRegex is the exact pattern registration has always enforced:
// something@something.something, no whitespace. It is deliberately looser
// than RFC-grade email validation so existing accounts keep validating.
var simpleEmailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func registerCustomRules(v *validator.Validate) error {
	return v.RegisterValidation("simple_email", func(fl validator.FieldLevel) bool {
		return simpleEmailRegex.MatchString(fl.Field().String())
	})
}
