package models

import "time"

type Salary struct {
	ID              string    `json:"id"`
	CompanyID       string    `json:"companyId"`
	UserID          string    `json:"userId,omitempty"`
	JobTitle        string    `json:"jobTitle"`
	Location        string    `json:"location"`
	Amount          int64     `json:"amount"`
	Currency        string    `json:"currency"`
	ExperienceYears int       `json:"experienceYears"`
	Status          string    `json:"status,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// SalaryInput is the body of a salary report.
type SalaryInput struct {
	CompanyID       string `json:"companyId" validate:"required"`
	JobTitle        string `json:"jobTitle" validate:"required"`
	Location        string `json:"location" validate:"required"`
	Amount          int64  `json:"amount" validate:"required,gt=0"`
	Currency        string `json:"currency" validate:"required,len=3"`
	ExperienceYears int    `json:"experienceYears" validate:"min=0"`
}

// SalaryStatistics aggregates reported salaries for a filter.
type SalaryStatistics struct {
	JobTitle string  `json:"jobTitle,omitempty"`
	Location string  `json:"location,omitempty"`
	Currency string  `json:"currency"`
	Count    int     `json:"count"`
	Min      int64   `json:"min"`
	Max      int64   `json:"max"`
	Average  float64 `json:"average"`
	Median   float64 `json:"median"`
}
