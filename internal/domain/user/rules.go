package user

import (
	"strings"

	"github.com/BruksfildServices01/hbnb/internal/httperr"
	"github.com/BruksfildServices01/hbnb/internal/validators"
)

// RequireText fails with InvalidInput naming field when value is blank.
func RequireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return httperr.InvalidInput(field, field+" is required")
	}
	return nil
}

func ValidateEmail(email string) error {
	if err := RequireText("email", email); err != nil {
		return err
	}
	if !validators.IsEmail(email) {
		return httperr.InvalidInput("email", "invalid email format")
	}
	return nil
}

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

func ValidatePassword(password string) error {
	if err := RequireText("password", password); err != nil {
		return err
	}
	if len(password) > MaxPasswordBytes {
		return httperr.InvalidInput("password", "password is too long")
	}
	return nil
}

// ValidateRegistration checks the four fields every new user needs.
func ValidateRegistration(firstName, lastName, email, password string) error {
	if err := RequireText("first_name", firstName); err != nil {
		return err
	}
	if err := RequireText("last_name", lastName); err != nil {
		return err
	}
	if err := ValidateEmail(email); err != nil {
		return err
	}
	return ValidatePassword(password)
}
