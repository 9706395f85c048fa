package utils

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs validate-tag checks on a request struct. Services call
// this so the engine stays safe regardless of which transport bound the data.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

var tickerRegex = regexp.MustCompile(`^[a-z0-9-]{1,64}$`)

// ValidateTicker checks a provider coin identifier (lowercase id scheme).
func ValidateTicker(code string) error {
	if !tickerRegex.MatchString(code) {
		return fmt.Errorf("invalid currency code %q", code)
	}
	return nil
}

func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	if len(password) > 128 {
		return fmt.Errorf("password must be no more than 128 characters long")
	}
	return nil
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}
