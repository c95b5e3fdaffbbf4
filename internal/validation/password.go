// Package validation provides input validation utilities.
package validation

import (
	"fmt"
	"unicode"
)

// ValidatePassword checks the password acceptance policy applied before
// hashing: minimum length 8 and at least one digit.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	hasDigit := false
	for _, r := range password {
		if unicode.IsDigit(r) {
			hasDigit = true
			break
		}
	}
	if !hasDigit {
		return fmt.Errorf("password must contain at least one digit")
	}

	return nil
}
