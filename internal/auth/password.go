package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength applies to registration and password reset alike.
const MinPasswordLength = 6

// HashPassword returns the bcrypt hash of password at the default cost (10).
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash reports whether password matches hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
