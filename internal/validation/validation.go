// Package validation provides input validation utilities.
package validation

import (
	"fmt"
	"regexp"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks that email looks like a deliverable address.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("Please include a valid email")
	}
	if len(email) > 254 || !emailPattern.MatchString(email) {
		return fmt.Errorf("Please include a valid email")
	}
	return nil
}

// ValidatePassword checks registration password requirements.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return fmt.Errorf("Please enter a password with 6 or more characters")
	}
	if len(password) > 128 {
		return fmt.Errorf("Password must not exceed 128 characters")
	}
	return nil
}
