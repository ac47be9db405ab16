package auth

import (
	"crypto/rand"
	"encoding/hex"
)

// resetTokenBytes gives 256 bits of entropy, rendered as 64 hex characters.
const resetTokenBytes = 32

// GenerateResetToken returns a fresh opaque password-reset token.
func GenerateResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
