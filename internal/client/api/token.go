package api

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/payscope/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the subset of access-token claims the client reads. The
// signature is never checked here; the server remains the authority.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// ParseAccessToken decodes the claims of a JWT access token without
// verifying it.
func ParseAccessToken(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	return claims, nil
}

// TokenExpired reports whether the access token's exp claim lies before now.
// Tokens without an exp claim are treated as live. An undecodable token is
// reported via the error and should be treated as unknown, not expired.
func TokenExpired(token string, now time.Time) (bool, error) {
	claims, err := ParseAccessToken(token)
	if err != nil {
		return false, err
	}
	if claims.ExpiresAt == nil {
		return false, nil
	}
	return !now.Before(claims.ExpiresAt.Time), nil
}
