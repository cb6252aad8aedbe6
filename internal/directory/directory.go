// Package directory implements the simulated account backend. Every call
// is served from the local accounts table behind an artificial latency,
// so flows behave as they would against a remote directory.
package directory

import (
	"context"
	"time"
)

// Role of an account holder.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Account is a registered user of the application.
type Account struct {
	ID        string
	Email     string
	Name      string
	Role      Role
	Verified  bool
	CreatedAt time.Time
}

// Directory is the account backend the auth container talks to.
//
// All methods honor context cancellation; implementations may apply an
// artificial latency before answering.
type Directory interface {
	// Authenticate matches email+password against a stored account.
	// Failures: common.ErrorInvalidCredentials when no account matches,
	// common.ErrorEmailNotVerified when the account exists but is unverified.
	Authenticate(ctx context.Context, email string, password []byte) (*Account, error)

	// Register creates a new unverified account.
	// Fails with common.ErrorEmailTaken when the email is already registered.
	Register(ctx context.Context, email string, password []byte, name string) (*Account, error)

	// MarkVerified flips the verified flag for the account with the email.
	// Fails with common.ErrorNotFound when no such account exists.
	MarkVerified(ctx context.Context, email string) error
}
