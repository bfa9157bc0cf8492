package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/payscope/internal/client/api"
	"github.com/dmitrijs2005/payscope/internal/client/cache"
	"github.com/dmitrijs2005/payscope/internal/client/models"
	"github.com/dmitrijs2005/payscope/internal/client/state"
	"github.com/dmitrijs2005/payscope/internal/client/storage"
	"github.com/dmitrijs2005/payscope/internal/logging"
)

// fakeAPI implements API. Unset funcs return zero values.
type fakeAPI struct {
	mu    sync.Mutex
	calls map[string]int

	tokens models.TokenPair

	SignupFn          func(api.SignupRequest) error
	VerifyFn          func(api.VerifyRequest) error
	LoginFn           func(api.LoginRequest) (models.LoginResult, error)
	LogoutFn          func(refresh string) error
	GetProfileFn      func() (models.User, error)
	UpdateProfileFn   func(models.ProfileInput) (models.User, error)
	GetCompanyFn      func(id string) (models.Company, error)
	OverviewFn        func(id string) (models.CompanyOverview, error)
	TaxesFn           func(id string) ([]models.Tax, error)
	StocksFn          func(id string) ([]models.Stock, error)
	CompanyReviewsFn  func(ctx context.Context, id string, p cache.Params) (models.Page[models.Review], error)
	CompanySalariesFn func(id string, p cache.Params) (models.Page[models.Salary], error)
	SubmitReviewFn    func(models.ReviewInput) (models.Review, error)
	StatisticsFn      func(cache.Params) (models.SalaryStatistics, error)
	SearchFn          func(q, kind string) (models.SearchResults, error)
	PendingReviewsFn  func() (models.Page[models.Review], error)
	PendingSalariesFn func() (models.Page[models.Salary], error)
	ModerateFn        func(kind, id string, d api.Decision) error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{calls: make(map[string]int)}
}

func (f *fakeAPI) hit(name string) {
	f.mu.Lock()
	f.calls[name]++
	f.mu.Unlock()
}

func (f *fakeAPI) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeAPI) Signup(_ context.Context, in api.SignupRequest) (models.Message, error) {
	f.hit("Signup")
	if f.SignupFn != nil {
		return models.Message{}, f.SignupFn(in)
	}
	return models.Message{Message: "ok"}, nil
}

func (f *fakeAPI) Verify(_ context.Context, in api.VerifyRequest) (models.Message, error) {
	f.hit("Verify")
	if f.VerifyFn != nil {
		return models.Message{}, f.VerifyFn(in)
	}
	return models.Message{Message: "ok"}, nil
}

func (f *fakeAPI) ResendCode(context.Context, string) (models.Message, error) {
	f.hit("ResendCode")
	return models.Message{}, nil
}

func (f *fakeAPI) Login(_ context.Context, in api.LoginRequest) (models.LoginResult, error) {
	f.hit("Login")
	if f.LoginFn != nil {
		return f.LoginFn(in)
	}
	return models.LoginResult{}, nil
}

func (f *fakeAPI) Logout(_ context.Context, refresh string) error {
	f.hit("Logout")
	if f.LogoutFn != nil {
		return f.LogoutFn(refresh)
	}
	return nil
}

func (f *fakeAPI) StartSession(_ context.Context, pair models.TokenPair) error {
	f.hit("StartSession")
	f.mu.Lock()
	f.tokens = pair
	f.mu.Unlock()
	return nil
}

func (f *fakeAPI) EndSession(context.Context) error {
	f.hit("EndSession")
	f.mu.Lock()
	f.tokens = models.TokenPair{}
	f.mu.Unlock()
	return nil
}

func (f *fakeAPI) Tokens(context.Context) (models.TokenPair, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tokens, nil
}

func (f *fakeAPI) GetProfile(context.Context) (models.User, error) {
	f.hit("GetProfile")
	if f.GetProfileFn != nil {
		return f.GetProfileFn()
	}
	return models.User{}, nil
}

func (f *fakeAPI) UpdateProfile(_ context.Context, in models.ProfileInput) (models.User, error) {
	f.hit("UpdateProfile")
	if f.UpdateProfileFn != nil {
		return f.UpdateProfileFn(in)
	}
	return models.User{}, nil
}

func (f *fakeAPI) ChangePassword(context.Context, models.PasswordChange) error {
	f.hit("ChangePassword")
	return nil
}

func (f *fakeAPI) MyReviews(context.Context, cache.Params) (models.Page[models.Review], error) {
	f.hit("MyReviews")
	return models.Page[models.Review]{}, nil
}

func (f *fakeAPI) MySalaries(context.Context, cache.Params) (models.Page[models.Salary], error) {
	f.hit("MySalaries")
	return models.Page[models.Salary]{}, nil
}

func (f *fakeAPI) ListCompanies(context.Context, cache.Params) (models.Page[models.Company], error) {
	f.hit("ListCompanies")
	return models.Page[models.Company]{}, nil
}

func (f *fakeAPI) GetCompany(_ context.Context, id string) (models.Company, error) {
	f.hit("GetCompany")
	if f.GetCompanyFn != nil {
		return f.GetCompanyFn(id)
	}
	return models.Company{ID: id}, nil
}

func (f *fakeAPI) CompanyOverview(_ context.Context, id string) (models.CompanyOverview, error) {
	f.hit("CompanyOverview")
	if f.OverviewFn != nil {
		return f.OverviewFn(id)
	}
	return models.CompanyOverview{CompanyID: id}, nil
}

func (f *fakeAPI) CompanyTaxes(_ context.Context, id string) ([]models.Tax, error) {
	f.hit("CompanyTaxes")
	if f.TaxesFn != nil {
		return f.TaxesFn(id)
	}
	return nil, nil
}

func (f *fakeAPI) CompanyStocks(_ context.Context, id string) ([]models.Stock, error) {
	f.hit("CompanyStocks")
	if f.StocksFn != nil {
		return f.StocksFn(id)
	}
	return nil, nil
}

func (f *fakeAPI) CompanyReviews(ctx context.Context, id string, p cache.Params) (models.Page[models.Review], error) {
	f.hit("CompanyReviews")
	if f.CompanyReviewsFn != nil {
		return f.CompanyReviewsFn(ctx, id, p)
	}
	return models.Page[models.Review]{Items: []models.Review{{ID: "r-" + id, CompanyID: id}}, Total: 1}, nil
}

func (f *fakeAPI) CompanySalaries(_ context.Context, id string, p cache.Params) (models.Page[models.Salary], error) {
	f.hit("CompanySalaries")
	if f.CompanySalariesFn != nil {
		return f.CompanySalariesFn(id, p)
	}
	return models.Page[models.Salary]{Items: []models.Salary{{ID: "s-" + id, CompanyID: id}}, Total: 1}, nil
}

func (f *fakeAPI) SubmitReview(_ context.Context, in models.ReviewInput) (models.Review, error) {
	f.hit("SubmitReview")
	if f.SubmitReviewFn != nil {
		return f.SubmitReviewFn(in)
	}
	return models.Review{ID: "new", CompanyID: in.CompanyID}, nil
}

func (f *fakeAPI) DeleteReview(context.Context, string) error {
	f.hit("DeleteReview")
	return nil
}

func (f *fakeAPI) SubmitSalary(_ context.Context, in models.SalaryInput) (models.Salary, error) {
	f.hit("SubmitSalary")
	return models.Salary{ID: "new", CompanyID: in.CompanyID}, nil
}

func (f *fakeAPI) DeleteSalary(context.Context, string) error {
	f.hit("DeleteSalary")
	return nil
}

func (f *fakeAPI) SalaryStatistics(_ context.Context, p cache.Params) (models.SalaryStatistics, error) {
	f.hit("SalaryStatistics")
	if f.StatisticsFn != nil {
		return f.StatisticsFn(p)
	}
	return models.SalaryStatistics{Count: 1}, nil
}

func (f *fakeAPI) Search(_ context.Context, q, kind string) (models.SearchResults, error) {
	f.hit("Search")
	if f.SearchFn != nil {
		return f.SearchFn(q, kind)
	}
	return models.SearchResults{Query: q}, nil
}

func (f *fakeAPI) PendingReviews(context.Context, cache.Params) (models.Page[models.Review], error) {
	f.hit("PendingReviews")
	if f.PendingReviewsFn != nil {
		return f.PendingReviewsFn()
	}
	return models.Page[models.Review]{}, nil
}

func (f *fakeAPI) PendingSalaries(context.Context, cache.Params) (models.Page[models.Salary], error) {
	f.hit("PendingSalaries")
	if f.PendingSalariesFn != nil {
		return f.PendingSalariesFn()
	}
	return models.Page[models.Salary]{}, nil
}

func (f *fakeAPI) ModerateReview(_ context.Context, id string, d api.Decision) error {
	f.hit("ModerateReview")
	if f.ModerateFn != nil {
		return f.ModerateFn("review", id, d)
	}
	return nil
}

func (f *fakeAPI) ModerateSalary(_ context.Context, id string, d api.Decision) error {
	f.hit("ModerateSalary")
	if f.ModerateFn != nil {
		return f.ModerateFn("salary", id, d)
	}
	return nil
}

type fakeReloader struct {
	mu sync.Mutex
	n  int
}

func (r *fakeReloader) Reload() {
	r.mu.Lock()
	r.n++
	r.mu.Unlock()
}

type fixture struct {
	api      *fakeAPI
	store    *state.Store
	session  *storage.SessionStorage
	reloader *fakeReloader
	svc      *Services
}

func newFixture() *fixture {
	f := &fixture{
		api:      newFakeAPI(),
		store:    state.NewStore(),
		session:  storage.NewSessionStorage(),
		reloader: &fakeReloader{},
	}
	f.svc = New(f.api, f.store, f.session, f.reloader, logging.Nop())
	return f
}

func (f *fixture) loginAs(u models.User) {
	f.store.Dispatch(f.store.Generation(), func(s *state.State) {
		s.Auth.User = &u
		s.Auth.Status = state.Authenticated
	})
}
