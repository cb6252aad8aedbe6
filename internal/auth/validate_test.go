package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateCredentials(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		want     []string
	}{
		{name: "valid pair", email: "nastya@janovian.com", password: "Nastya123!", want: nil},
		{name: "minimum length password", email: "a@b.co", password: "123456", want: nil},
		{name: "bad email", email: "not-an-email", password: "longenough", want: []string{msgInvalidEmail}},
		{name: "email with display name form", email: "Mira <mira@example.com>", password: "longenough", want: []string{msgInvalidEmail}},
		{name: "short password", email: "mira@example.com", password: "12345", want: []string{msgShortPassword}},
		{name: "both invalid, email rule first", email: "nope", password: "123", want: []string{msgInvalidEmail, msgShortPassword}},
		{name: "empty everything", email: "", password: "", want: []string{msgInvalidEmail, msgShortPassword}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ValidateCredentials(tc.email, tc.password)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Violations: []string{msgInvalidEmail, msgShortPassword}}
	require.Equal(t, "Invalid email address; Password must be at least 6 characters", err.Error())
}
