package models

// Page is one page of a paginated listing.
type Page[T any] struct {
	Items []T `json:"items"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// HasNext reports whether another page follows.
func (p Page[T]) HasNext() bool {
	return p.Limit > 0 && p.Page*p.Limit < p.Total
}

// SearchResults groups the hits of a global search.
type SearchResults struct {
	Query     string    `json:"query"`
	Companies []Company `json:"companies"`
	Reviews   []Review  `json:"reviews"`
	Salaries  []Salary  `json:"salaries"`
}

// ProfileInput is the body of a profile update.
type ProfileInput struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
}

// PasswordChange is the body of a password change.
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}
