// Package common contains shared constants and sentinel errors used across
// payscope components.
package common

// Header names attached to every outbound API request.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
	BearerPrefix            = "Bearer "
)

// Keys under which the persistent token store keeps the credential pair.
const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
)

// PendingEmailKey is the session storage key holding the email that awaits
// verification after signup.
const PendingEmailKey = "pending_verification_email"
