package models

import "time"

// Moderation states of user-submitted content.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type Review struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"companyId"`
	UserID    string    `json:"userId,omitempty"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Pros      string    `json:"pros,omitempty"`
	Cons      string    `json:"cons,omitempty"`
	Rating    int       `json:"rating"`
	JobTitle  string    `json:"jobTitle,omitempty"`
	Status    string    `json:"status,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReviewInput is the body of a review submission.
type ReviewInput struct {
	CompanyID string `json:"companyId" validate:"required"`
	Title     string `json:"title" validate:"required"`
	Body      string `json:"body" validate:"required"`
	Pros      string `json:"pros,omitempty"`
	Cons      string `json:"cons,omitempty"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	JobTitle  string `json:"jobTitle,omitempty"`
}
