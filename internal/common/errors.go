// Package common defines shared constants and sentinel errors used across
// the client layers of payscope. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Storage-level errors.
	ErrorNotFound = errors.New("not found")

	// Session errors.
	ErrNotAuthenticated    = errors.New("not authenticated")
	ErrNoPendingEmail      = errors.New("no email pending verification")
	ErrRefreshTokenMissing = errors.New("refresh token missing")

	// Token inspection errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
