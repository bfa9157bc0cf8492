package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/payscope/internal/client/models"
)

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

type VerifyRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Signup registers an account that must then be verified with the emailed code.
func (c *Client) Signup(ctx context.Context, in SignupRequest) (models.Message, error) {
	var out models.Message
	if err := validateInput(in); err != nil {
		return out, err
	}
	err := c.sendPublic(ctx, "/auth/signup", in, &out)
	return out, err
}

func (c *Client) Verify(ctx context.Context, in VerifyRequest) (models.Message, error) {
	var out models.Message
	if err := validateInput(in); err != nil {
		return out, err
	}
	err := c.sendPublic(ctx, "/auth/verify", in, &out)
	return out, err
}

func (c *Client) ResendCode(ctx context.Context, email string) (models.Message, error) {
	var out models.Message
	in := struct {
		Email string `json:"email" validate:"required,email"`
	}{Email: email}
	if err := validateInput(in); err != nil {
		return out, err
	}
	err := c.sendPublic(ctx, "/auth/resend-code", in, &out)
	return out, err
}

// Login exchanges credentials for a user record and token pair. It does not
// store the tokens; see StartSession.
func (c *Client) Login(ctx context.Context, in LoginRequest) (models.LoginResult, error) {
	var out models.LoginResult
	if err := validateInput(in); err != nil {
		return out, err
	}
	err := c.sendPublic(ctx, "/auth/login", in, &out)
	return out, err
}

func (c *Client) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	var out models.TokenPair
	in := struct {
		RefreshToken string `json:"refreshToken"`
	}{RefreshToken: refreshToken}
	err := c.sendPublic(ctx, "/auth/refresh", in, &out)
	return out, err
}

// Logout revokes the refresh token on the server.
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	in := struct {
		RefreshToken string `json:"refreshToken,omitempty"`
	}{RefreshToken: refreshToken}
	return c.do(ctx, &request{method: http.MethodPost, path: "/auth/logout", body: in, public: true}, nil)
}
