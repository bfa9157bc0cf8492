package services

import (
	"context"

	"github.com/dmitrijs2005/payscope/internal/client/api"
	"github.com/dmitrijs2005/payscope/internal/client/cache"
	"github.com/dmitrijs2005/payscope/internal/client/models"
)

// SessionAPI is the part of the API client that owns credentials.
type SessionAPI interface {
	Signup(ctx context.Context, in api.SignupRequest) (models.Message, error)
	Verify(ctx context.Context, in api.VerifyRequest) (models.Message, error)
	ResendCode(ctx context.Context, email string) (models.Message, error)
	Login(ctx context.Context, in api.LoginRequest) (models.LoginResult, error)
	Logout(ctx context.Context, refreshToken string) error
	StartSession(ctx context.Context, pair models.TokenPair) error
	EndSession(ctx context.Context) error
	Tokens(ctx context.Context) (models.TokenPair, error)
}

type ProfileAPI interface {
	GetProfile(ctx context.Context) (models.User, error)
	UpdateProfile(ctx context.Context, in models.ProfileInput) (models.User, error)
	ChangePassword(ctx context.Context, in models.PasswordChange) error
	MyReviews(ctx context.Context, params cache.Params) (models.Page[models.Review], error)
	MySalaries(ctx context.Context, params cache.Params) (models.Page[models.Salary], error)
}

type CompanyAPI interface {
	ListCompanies(ctx context.Context, params cache.Params) (models.Page[models.Company], error)
	GetCompany(ctx context.Context, id string) (models.Company, error)
	CompanyOverview(ctx context.Context, id string) (models.CompanyOverview, error)
	CompanyTaxes(ctx context.Context, id string) ([]models.Tax, error)
	CompanyStocks(ctx context.Context, id string) ([]models.Stock, error)
	CompanyReviews(ctx context.Context, id string, params cache.Params) (models.Page[models.Review], error)
	CompanySalaries(ctx context.Context, id string, params cache.Params) (models.Page[models.Salary], error)
}

type ReviewAPI interface {
	SubmitReview(ctx context.Context, in models.ReviewInput) (models.Review, error)
	DeleteReview(ctx context.Context, id string) error
}

type SalaryAPI interface {
	SubmitSalary(ctx context.Context, in models.SalaryInput) (models.Salary, error)
	DeleteSalary(ctx context.Context, id string) error
	SalaryStatistics(ctx context.Context, params cache.Params) (models.SalaryStatistics, error)
}

type SearchAPI interface {
	Search(ctx context.Context, query, kind string) (models.SearchResults, error)
}

type AdminAPI interface {
	PendingReviews(ctx context.Context, params cache.Params) (models.Page[models.Review], error)
	PendingSalaries(ctx context.Context, params cache.Params) (models.Page[models.Salary], error)
	ModerateReview(ctx context.Context, id string, d api.Decision) error
	ModerateSalary(ctx context.Context, id string, d api.Decision) error
}

// API is everything the services need; *api.Client implements it.
type API interface {
	SessionAPI
	ProfileAPI
	CompanyAPI
	ReviewAPI
	SalaryAPI
	SearchAPI
	AdminAPI
}

var _ API = (*api.Client)(nil)
