package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/janovian/stillpoint/internal/auth"
	"github.com/janovian/stillpoint/internal/common"
)

// consoleSender surfaces verification tokens directly to the user. A real
// deployment would email them instead.
type consoleSender struct {
	out io.Writer
}

func (s consoleSender) Send(ctx context.Context, email, token string) error {
	fmt.Fprintf(s.out, "Verification token for %s (paste into 'verify'):\n%s\n", email, token)
	return nil
}

func (a *App) Login(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	session, err := a.ctx.Auth.Login(ctx, email, password)
	if err != nil {
		a.printAuthError(err)
		return
	}

	a.ctx.Social.BindUser(ctx, session.UserID)
	fmt.Fprintf(a.out, "Welcome back, %s!\n", session.Name)
}

func (a *App) Signup(ctx context.Context) {
	name, err := GetSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	if err := a.ctx.Auth.Signup(ctx, email, password, name); err != nil {
		a.printAuthError(err)
		return
	}
	fmt.Fprintln(a.out, "Account created. Verify your email, then log in.")
}

func (a *App) Verify(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: verify <token>")
		return
	}
	if err := a.ctx.Auth.VerifyEmail(ctx, args[0]); err != nil {
		a.printAuthError(err)
		return
	}
	fmt.Fprintln(a.out, "Email verified. You can log in now.")
}

func (a *App) Logout(ctx context.Context) {
	a.ctx.Auth.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
}

func (a *App) WhoAmI() {
	session := a.ctx.Auth.Session()
	if session == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return
	}
	fmt.Fprintf(a.out, "%s <%s> role=%s\n", session.Name, session.Email, session.Role)
}

func (a *App) printAuthError(err error) {
	var verr *auth.ValidationError
	switch {
	case errors.As(err, &verr):
		for _, msg := range verr.Violations {
			fmt.Fprintln(a.out, msg)
		}
	case errors.Is(err, common.ErrorUnavailable):
		fmt.Fprintln(a.out, "The account service is unavailable in this session.")
	default:
		fmt.Fprintln(a.out, err.Error())
	}
}
