package auth

import (
	"net/mail"
	"strings"
)

// Validation messages, in the order rules are checked.
const (
	msgInvalidEmail  = "Invalid email address"
	msgShortPassword = "Password must be at least 6 characters"
)

const minPasswordLength = 6

// ValidationError carries the ordered list of violated credential rules.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, "; ")
}

// ValidateCredentials checks email and password shape without touching the
// directory. It returns the violated-rule messages in check order; an empty
// result means the credentials are well-formed.
func ValidateCredentials(email, password string) []string {
	var violations []string

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		violations = append(violations, msgInvalidEmail)
	}

	if len(password) < minPasswordLength {
		violations = append(violations, msgShortPassword)
	}

	return violations
}
