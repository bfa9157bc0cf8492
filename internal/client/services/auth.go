package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/payscope/internal/client/api"
	"github.com/dmitrijs2005/payscope/internal/client/models"
	"github.com/dmitrijs2005/payscope/internal/client/state"
	"github.com/dmitrijs2005/payscope/internal/client/storage"
	"github.com/dmitrijs2005/payscope/internal/common"
)

// ErrSuperseded is returned when the session was reset (logout) while a
// login was in flight; its result is discarded.
var ErrSuperseded = errors.New("session was reset while the request was in flight")

// Reloader restarts the front end from a clean slate after logout.
type Reloader interface {
	Reload()
}

// AuthService drives the session lifecycle:
//
//	anonymous -> pending-verification (Signup) -> anonymous (Verify)
//	anonymous -> authenticated (Login, RestoreSession) -> anonymous (Logout)
type AuthService struct {
	base
	api      SessionAPI
	profile  ProfileAPI
	session  *storage.SessionStorage
	reloader Reloader
	now      func() time.Time
}

func authFailed(s *state.State, msg string) {
	s.Auth.Loading = false
	s.Auth.Error = msg
}

func (a *AuthService) begin() uint64 {
	gen := a.store.Generation()
	a.store.Dispatch(gen, func(s *state.State) {
		s.Auth.Loading = true
		s.Auth.Error = ""
	})
	return gen
}

// Signup registers an account and remembers its email until verification.
func (a *AuthService) Signup(ctx context.Context, email, username, password string) error {
	gen := a.begin()
	email = strings.TrimSpace(email)

	_, err := a.api.Signup(ctx, api.SignupRequest{Email: email, Username: username, Password: password})
	if err != nil {
		return a.fail(ctx, gen, "signup", err, authFailed)
	}

	a.session.Set(common.PendingEmailKey, email)
	a.store.Dispatch(gen, func(s *state.State) {
		s.Auth.Loading = false
		s.Auth.PendingEmail = email
		s.Auth.Status = state.PendingVerification
	})
	a.log.Info(ctx, "signup succeeded, verification pending", "email", email)
	return nil
}

func (a *AuthService) pendingEmail() string {
	if email, ok := a.session.Get(common.PendingEmailKey); ok && email != "" {
		return email
	}
	return a.store.Snapshot().Auth.PendingEmail
}

// Verify confirms the pending email with code. The user still has to log in.
func (a *AuthService) Verify(ctx context.Context, code string) error {
	gen := a.begin()

	email := a.pendingEmail()
	if email == "" {
		return a.fail(ctx, gen, "verify", common.ErrNoPendingEmail, authFailed)
	}

	if _, err := a.api.Verify(ctx, api.VerifyRequest{Email: email, Code: strings.TrimSpace(code)}); err != nil {
		return a.fail(ctx, gen, "verify", err, authFailed)
	}

	a.session.Delete(common.PendingEmailKey)
	a.store.Dispatch(gen, func(s *state.State) {
		s.Auth.Loading = false
		s.Auth.PendingEmail = ""
		s.Auth.Status = state.Anonymous
	})
	return nil
}

// ResendCode asks for another verification code for the pending email.
func (a *AuthService) ResendCode(ctx context.Context) error {
	gen := a.begin()

	email := a.pendingEmail()
	if email == "" {
		return a.fail(ctx, gen, "resend", common.ErrNoPendingEmail, authFailed)
	}
	if _, err := a.api.ResendCode(ctx, email); err != nil {
		return a.fail(ctx, gen, "resend", err, authFailed)
	}

	a.store.Dispatch(gen, func(s *state.State) { s.Auth.Loading = false })
	return nil
}

// Login authenticates and persists the token pair, then refines the user
// record with the profile. A failed profile fetch is recorded on the profile
// slice only; the session stays authenticated with the login data.
func (a *AuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	gen := a.begin()

	res, err := a.api.Login(ctx, api.LoginRequest{Email: strings.TrimSpace(email), Password: password})
	if err != nil {
		return models.User{}, a.fail(ctx, gen, "login", err, authFailed)
	}
	if a.store.Generation() != gen {
		return models.User{}, ErrSuperseded
	}
	if err := a.api.StartSession(ctx, res.TokenPair); err != nil {
		return models.User{}, a.fail(ctx, gen, "login", err, authFailed)
	}

	user := res.User
	a.store.Dispatch(gen, func(s *state.State) {
		s.Auth.Loading = false
		s.Auth.User = &user
		s.Auth.Status = state.Authenticated
		s.Auth.PendingEmail = ""
	})
	a.log.Info(ctx, "login succeeded", "user", user.ID)

	profile, err := a.profile.GetProfile(ctx)
	if err != nil {
		_ = a.fail(ctx, gen, "login.profile", err, func(s *state.State, msg string) {
			s.Profile.Error = msg
		})
		return user, nil
	}

	a.store.Dispatch(gen, func(s *state.State) { s.SetProfile(profile) })
	return user.Merge(profile), nil
}

// Logout ends the session locally whatever the server says: tokens and
// session storage are wiped, every slice is reset and the front end reloads.
func (a *AuthService) Logout(ctx context.Context) error {
	pair, err := a.api.Tokens(ctx)
	if err != nil {
		a.log.Warn(ctx, "read tokens on logout", "error", err)
	}
	if !pair.IsZero() {
		if err := a.api.Logout(ctx, pair.RefreshToken); err != nil {
			a.log.Warn(ctx, "server logout failed", "error", err)
		}
	}

	var clearErr error
	if err := a.api.EndSession(ctx); err != nil {
		a.log.Error(ctx, "clear tokens on logout", "error", err)
		clearErr = fmt.Errorf("logout: %w", err)
	}
	a.session.Clear()
	a.store.Reset()
	a.reloader.Reload()
	return clearErr
}

// SessionExpired drops all state after the API client gave up on the
// session. Credentials are already cleared by then.
func (a *AuthService) SessionExpired() {
	a.session.Clear()
	a.store.Reset()
}

// RestoreSession re-establishes a session from stored tokens. It runs at most
// once per store generation; later callers only report whether the store
// is currently authenticated.
func (a *AuthService) RestoreSession(ctx context.Context) (bool, error) {
	gen, ok := a.store.BeginInit()
	if !ok {
		return a.store.Snapshot().Auth.Status == state.Authenticated, nil
	}
	done := func(s *state.State) { s.Auth.Init = state.InitDone }

	if email, ok := a.session.Get(common.PendingEmailKey); ok && email != "" {
		a.store.Dispatch(gen, func(s *state.State) {
			s.Auth.PendingEmail = email
			s.Auth.Status = state.PendingVerification
		})
	}

	pair, err := a.api.Tokens(ctx)
	if err != nil {
		a.store.Dispatch(gen, done)
		return false, fmt.Errorf("read tokens: %w", err)
	}
	if !a.usable(ctx, pair) {
		if !pair.IsZero() {
			if err := a.api.EndSession(ctx); err != nil {
				a.log.Warn(ctx, "clear stale tokens", "error", err)
			}
		}
		a.store.Dispatch(gen, done)
		return false, nil
	}

	profile, err := a.profile.GetProfile(ctx)
	if err != nil {
		return false, a.fail(ctx, gen, "restore", err, func(s *state.State, msg string) {
			s.Profile.Error = msg
			s.Auth.Init = state.InitDone
		})
	}

	a.store.Dispatch(gen, func(s *state.State) {
		s.SetProfile(profile)
		s.Auth.Status = state.Authenticated
		s.Auth.PendingEmail = ""
		s.Auth.Init = state.InitDone
	})
	return true, nil
}

// usable reports whether pair can plausibly authenticate a request: a live
// access token, or a refresh token to obtain one.
func (a *AuthService) usable(ctx context.Context, pair models.TokenPair) bool {
	if pair.RefreshToken != "" {
		return true
	}
	if pair.AccessToken == "" {
		return false
	}
	expired, err := api.TokenExpired(pair.AccessToken, a.now())
	if err != nil {
		a.log.Debug(ctx, "access token is not a readable JWT", "error", err)
		return true
	}
	return !expired
}

func (a *AuthService) ChangePassword(ctx context.Context, current, next string) error {
	gen := a.begin()
	if err := a.profile.ChangePassword(ctx, models.PasswordChange{CurrentPassword: current, NewPassword: next}); err != nil {
		return a.fail(ctx, gen, "change-password", err, authFailed)
	}
	a.store.Dispatch(gen, func(s *state.State) { s.Auth.Loading = false })
	return nil
}
