package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/payscope/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

var errPasswordMismatch = errors.New("passwords do not match")

// argOrPrompt returns args[i] when present, otherwise asks for it.
func (a *App) argOrPrompt(args []string, i int, prompt string) (string, error) {
	if i < len(args) {
		return args[i], nil
	}
	return getSimpleText(a.reader, prompt, a.out)
}

// Signup asks for email, user name and password (twice) and registers.
func (a *App) Signup(ctx context.Context, args []string) error {
	email, err := a.argOrPrompt(args, 0, "Enter email")
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword(a.reader, "Repeat password", a.out)
	if err != nil {
		return err
	}
	if password != confirm {
		return errPasswordMismatch
	}

	if err := a.svc.Auth.Signup(ctx, email, username, password); err != nil {
		return err
	}
	a.view.line("Account created. Check %s for a verification code, then type 'verify <code>'.", email)
	return nil
}

func (a *App) Verify(ctx context.Context, args []string) error {
	code, err := a.argOrPrompt(args, 0, "Enter verification code")
	if err != nil {
		return err
	}
	if err := a.svc.Auth.Verify(ctx, code); err != nil {
		return err
	}
	a.view.line("Email verified. You can log in now.")
	return nil
}

func (a *App) Resend(ctx context.Context, _ []string) error {
	if err := a.svc.Auth.ResendCode(ctx); err != nil {
		return err
	}
	a.view.line("A new code is on its way.")
	return nil
}

// Login prompts for any credentials not given as arguments.
func (a *App) Login(ctx context.Context, args []string) error {
	email, err := a.argOrPrompt(args, 0, "Enter email")
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}

	u, err := a.svc.Auth.Login(ctx, email, password)
	if err != nil {
		return err
	}
	a.expired.Store(false)
	a.view.line("Logged in as %s.", u.Username)
	if msg := a.store.Snapshot().Profile.Error; msg != "" {
		a.view.line("(profile not loaded: %s)", msg)
	}
	return nil
}

func (a *App) Logout(ctx context.Context, _ []string) error {
	return a.svc.Auth.Logout(ctx)
}

func (a *App) WhoAmI(_ context.Context, _ []string) error {
	a.view.user(a.store.Snapshot().Auth.User)
	return nil
}

// Profile shows the profile, or updates it with "profile set name=<n> email=<e>".
func (a *App) Profile(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "set" {
		p := parseArgs(args[1:])
		u, err := a.svc.Profile.Update(ctx, models.ProfileInput{Username: p["name"], Email: p["email"]})
		if err != nil {
			return err
		}
		a.view.user(&u)
		return nil
	}

	u, err := a.svc.Profile.Fetch(ctx)
	if err != nil {
		return err
	}
	a.view.user(&u)
	return nil
}

func (a *App) Passwd(ctx context.Context, _ []string) error {
	current, err := getPassword(a.reader, "Current password", a.out)
	if err != nil {
		return err
	}
	next, err := getPassword(a.reader, "New password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword(a.reader, "Repeat new password", a.out)
	if err != nil {
		return err
	}
	if next != confirm {
		return errPasswordMismatch
	}

	if err := a.svc.Auth.ChangePassword(ctx, current, next); err != nil {
		return err
	}
	a.view.line("Password changed.")
	return nil
}
