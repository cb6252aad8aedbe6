// Package auth owns the authenticated-session state: login, signup, logout,
// credential validation, and email verification against the account
// directory.
package auth

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/janovian/stillpoint/internal/common"
	"github.com/janovian/stillpoint/internal/container"
	"github.com/janovian/stillpoint/internal/directory"
	"github.com/janovian/stillpoint/internal/logging"
	"github.com/janovian/stillpoint/internal/store"
)

// SnapshotKey is the persisted snapshot key for auth state.
const SnapshotKey = "auth-store"

// Session is the authenticated-user record held for the duration of a login.
type Session struct {
	UserID        string         `json:"userId"`
	Email         string         `json:"email"`
	Name          string         `json:"name"`
	Role          directory.Role `json:"role"`
	EmailVerified bool           `json:"emailVerified"`
}

// State is the persisted auth snapshot.
type State struct {
	Session *Session `json:"session,omitempty"`
}

// VerificationSender delivers a verification token for a freshly registered
// email. Real delivery is external; the CLI wires a sender that surfaces the
// token to the user directly.
type VerificationSender interface {
	Send(ctx context.Context, email, token string) error
}

// Container is the auth state container.
//
// Login and Signup involve a (simulated) backend round-trip. Each call
// stamps an increasing epoch and a response is applied only while its epoch
// is still the latest, so an overlapping second call cannot be clobbered by
// the first one resolving late.
type Container struct {
	state  *container.Container[State]
	dir    directory.Directory
	tokens *directory.TokenIssuer
	sender VerificationSender
	log    logging.Logger

	epoch atomic.Uint64
}

// NewContainer wires the auth container to its collaborators.
func NewContainer(st store.Store, dir directory.Directory, tokens *directory.TokenIssuer, sender VerificationSender, log logging.Logger) *Container {
	return &Container{
		state:  container.New(SnapshotKey, st, log, func() State { return State{} }),
		dir:    dir,
		tokens: tokens,
		sender: sender,
		log:    log.With("container", SnapshotKey),
	}
}

// Restore loads the persisted session, if any.
func (a *Container) Restore(ctx context.Context) {
	a.state.Restore(ctx)
}

// Session returns a copy of the current session, or nil when logged out.
func (a *Container) Session() *Session {
	var s *Session
	a.state.View(func(st *State) {
		if st.Session != nil {
			copied := *st.Session
			s = &copied
		}
	})
	return s
}

// Login authenticates against the directory and establishes the session.
// On any failure the session is cleared: a failed login always leaves the
// user logged out, even if a session existed before.
func (a *Container) Login(ctx context.Context, email, password string) (*Session, error) {
	if violations := ValidateCredentials(email, password); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	epoch := a.epoch.Add(1)

	account, err := a.dir.Authenticate(ctx, email, []byte(password))

	if a.epoch.Load() != epoch {
		return nil, common.ErrorStaleRequest
	}

	if err != nil {
		_ = a.state.Mutate(ctx, func(st *State) error {
			st.Session = nil
			return nil
		})
		return nil, err
	}

	session := &Session{
		UserID:        account.ID,
		Email:         account.Email,
		Name:          account.Name,
		Role:          account.Role,
		EmailVerified: account.Verified,
	}
	_ = a.state.Mutate(ctx, func(st *State) error {
		st.Session = session
		return nil
	})

	a.log.Info(ctx, "login ok", "userId", session.UserID, "role", session.Role)
	return a.Session(), nil
}

// Signup registers a new unverified account and sends it a verification
// token. It does not establish a session; the user logs in after verifying.
func (a *Container) Signup(ctx context.Context, email, password, name string) error {
	if violations := ValidateCredentials(email, password); len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}

	epoch := a.epoch.Add(1)

	account, err := a.dir.Register(ctx, email, []byte(password), name)

	if a.epoch.Load() != epoch {
		return common.ErrorStaleRequest
	}
	if err != nil {
		return err
	}

	token, err := a.tokens.Issue(account.Email)
	if err != nil {
		return fmt.Errorf("failed to issue verification token: %w", err)
	}
	if err := a.sender.Send(ctx, account.Email, token); err != nil {
		return fmt.Errorf("failed to send verification token: %w", err)
	}

	a.log.Info(ctx, "signup ok", "userId", account.ID)
	return nil
}

// VerifyEmail redeems a verification token and marks the account verified.
func (a *Container) VerifyEmail(ctx context.Context, token string) error {
	email, err := a.tokens.Verify(token)
	if err != nil {
		return err
	}
	return a.dir.MarkVerified(ctx, email)
}

// Logout clears the session and persists the cleared state.
func (a *Container) Logout(ctx context.Context) {
	_ = a.state.Mutate(ctx, func(st *State) error {
		st.Session = nil
		return nil
	})
}
