package validation

import (
	"fmt"
	"regexp"
	"strings"

	"tutorbuddy/internal/i18n"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
var clockRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateEmail checks if an email address is valid
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ValidationError{Field: "email", Message: "email is required"}
	}
	if !emailRegex.MatchString(email) {
		return ValidationError{Field: "email", Message: "invalid email format"}
	}
	return nil
}

// ValidatePassword checks if a password meets requirements
func ValidatePassword(password string) error {
	if password == "" {
		return ValidationError{Field: "password", Message: "password is required"}
	}
	if len(password) < 8 {
		return ValidationError{Field: "password", Message: "password must be at least 8 characters"}
	}
	return nil
}

// ValidateName checks if a name is valid
func ValidateName(field, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ValidationError{Field: field, Message: "name is required"}
	}
	if len(name) < 2 {
		return ValidationError{Field: field, Message: "name must be at least 2 characters"}
	}
	return nil
}

// ValidateLanguage checks the code against the supported catalog
func ValidateLanguage(code string) error {
	if !i18n.IsSupported(code) {
		return ValidationError{Field: "language", Message: "unsupported language"}
	}
	return nil
}

// ValidateClock checks a 24-hour HH:MM string
func ValidateClock(field, clock string) error {
	if !clockRegex.MatchString(clock) {
		return ValidationError{Field: field, Message: "must be HH:MM in 24-hour time"}
	}
	return nil
}
