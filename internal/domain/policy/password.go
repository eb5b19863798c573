// Package policy holds pure domain rules.
package policy

import (
	"strings"
	"unicode/utf8"
)

const (
	// MinPasswordLength is counted in characters, not bytes.
	MinPasswordLength = 8

	// PasswordSpecialChars is the punctuation set a strong password must draw from.
	PasswordSpecialChars = "!@#$%^&*"

	// PasswordRequirements describes the rules to the user.
	PasswordRequirements = "Password must be at least 8 characters long, include uppercase, lowercase, a digit and a special character (!@#$%^&*)."
)

// IsStrongPassword reports whether password is at least MinPasswordLength
// characters and contains an ASCII uppercase letter, an ASCII lowercase
// letter, a digit and one of PasswordSpecialChars.
func IsStrongPassword(password string) bool {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return false
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case 'A' <= r && r <= 'Z':
			hasUpper = true
		case 'a' <= r && r <= 'z':
			hasLower = true
		case '0' <= r && r <= '9':
			hasDigit = true
		case strings.ContainsRune(PasswordSpecialChars, r):
			hasSpecial = true
		}
	}

	return hasUpper && hasLower && hasDigit && hasSpecial
}
