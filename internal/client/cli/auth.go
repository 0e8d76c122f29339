package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/aaywp/portal/internal/client/api"
	"github.com/aaywp/portal/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for admin credentials and signs in. The password is wiped
// before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	resp, err := a.auth.Login(ctx, email, password)
	if err != nil {
		a.log.Info(ctx, "login unsuccessful", "email", email, "error", err)
		if errors.Is(err, api.ErrUnavailable) {
			return fmt.Errorf("server unavailable: %w", err)
		}
		return err
	}

	a.userName = email
	if resp.User != nil && resp.User.Email != "" {
		a.userName = resp.User.Email
	}
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

// Logout forgets the stored credential.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.userName = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// Status prints what the stored credential says about the session.
func (a *App) Status(ctx context.Context) error {
	st, err := a.auth.Status(ctx)
	if err != nil {
		return err
	}

	switch {
	case !st.LoggedIn:
		a.userName = ""
		fmt.Fprintln(a.out, "Not logged in")
	case st.Expired:
		fmt.Fprintf(a.out, "Session of %s expired at %s, please log in again\n", st.Subject, st.ExpiresAt.Local().Format(timeLayout))
	case st.ExpiresAt.IsZero():
		fmt.Fprintf(a.out, "Logged in as %s\n", st.Subject)
	default:
		fmt.Fprintf(a.out, "Logged in as %s until %s\n", st.Subject, st.ExpiresAt.Local().Format(timeLayout))
	}
	return nil
}

const timeLayout = "2006-01-02 15:04"
