package models

import "time"

// Role values assigned by the server.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the authenticated account together with its aggregate counts.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	Role        string    `json:"role"`
	Verified    bool      `json:"verified"`
	ReviewCount int       `json:"reviewCount"`
	SalaryCount int       `json:"salaryCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Merge overlays the non-zero fields of other onto a copy of u. It is used
// when a profile fetch refines the record returned by login.
func (u User) Merge(other User) User {
	if other.ID != "" {
		u.ID = other.ID
	}
	if other.Email != "" {
		u.Email = other.Email
	}
	if other.Username != "" {
		u.Username = other.Username
	}
	if other.Role != "" {
		u.Role = other.Role
	}
	if other.Verified {
		u.Verified = true
	}
	if other.ReviewCount != 0 {
		u.ReviewCount = other.ReviewCount
	}
	if other.SalaryCount != 0 {
		u.SalaryCount = other.SalaryCount
	}
	if !other.CreatedAt.IsZero() {
		u.CreatedAt = other.CreatedAt
	}
	return u
}

// TokenPair is the bearer credential issued by login and refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func (p TokenPair) IsZero() bool {
	return p.AccessToken == "" && p.RefreshToken == ""
}

// LoginResult is the login response body.
type LoginResult struct {
	User User `json:"user"`
	TokenPair
}

// Message is the generic acknowledgement body of signup/verify style calls.
type Message struct {
	Message string `json:"message"`
}
