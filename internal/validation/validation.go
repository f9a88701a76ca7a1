// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailPattern  = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	letterPattern = regexp.MustCompile(`[a-zA-Z]`)
	digitPattern  = regexp.MustCompile(`[0-9]`)
)

// ValidateUsername checks that a username is present and reasonably sized.
func ValidateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("Username is required")
	}
	if len(username) > 30 {
		return fmt.Errorf("Username must not exceed 30 characters")
	}
	return nil
}

// ValidateEmail checks basic email format.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("Invalid email format")
	}
	if len(email) > 254 {
		return fmt.Errorf("Email must not exceed 254 characters")
	}
	return nil
}

// ValidatePassword checks that a password is at least 8 characters and
// contains at least one letter and one number.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("Password must be at least 8 characters")
	}
	if len(password) > 128 {
		return fmt.Errorf("Password must not exceed 128 characters")
	}
	if !letterPattern.MatchString(password) {
		return fmt.Errorf("Password must contain at least one letter")
	}
	if !digitPattern.MatchString(password) {
		return fmt.Errorf("Password must contain at least one number")
	}
	return nil
}
