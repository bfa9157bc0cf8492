package state

import (
	"maps"

	"github.com/dmitrijs2005/payscope/internal/client/cache"
	"github.com/dmitrijs2005/payscope/internal/client/models"
)

// AuthStatus is the position in the session lifecycle.
type AuthStatus int

const (
	Anonymous AuthStatus = iota
	PendingVerification
	Authenticated
)

func (s AuthStatus) String() string {
	switch s {
	case PendingVerification:
		return "pending-verification"
	case Authenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// InitState tracks session restoration within one generation.
type InitState int

const (
	InitIdle InitState = iota
	InitRunning
	InitDone
)

// Field names one independently loaded part of a company page.
type Field string

const (
	FieldCompany  Field = "company"
	FieldOverview Field = "overview"
	FieldTaxes    Field = "taxes"
	FieldStocks   Field = "stocks"
	FieldReviews  Field = "reviews"
	FieldSalaries Field = "salaries"
)

type (
	ReviewPage = models.Page[models.Review]
	SalaryPage = models.Page[models.Salary]
)

type AuthState struct {
	User         *models.User
	Status       AuthStatus
	PendingEmail string
	Init         InitState
	Loading      bool
	Error        string
}

type ProfileState struct {
	Profile  *models.User
	Reviews  *ReviewPage
	Salaries *SalaryPage
	Loading  bool
	Error    string
}

type CompaniesState struct {
	List     *models.Page[models.Company]
	Selected *models.Company
	Loading  bool
	Error    string
}

// CompanyDetailsState is the company page. Each Field loads and fails on its
// own, so loading and error state are kept per field.
type CompanyDetailsState struct {
	CompanyID   string
	Overview    *models.CompanyOverview
	Taxes       []models.Tax
	Stocks      []models.Stock
	Reviews     *ReviewPage
	Salaries    *SalaryPage
	ReviewCache *cache.Pages[ReviewPage]
	SalaryCache *cache.Pages[SalaryPage]
	Loading     map[Field]bool
	Errors      map[Field]string
}

// Begin marks f as loading and forgets its previous error.
func (d *CompanyDetailsState) Begin(f Field) {
	d.Loading[f] = true
	delete(d.Errors, f)
}

// Fail records msg as the error of f.
func (d *CompanyDetailsState) Fail(f Field, msg string) {
	d.Loading[f] = false
	d.Errors[f] = msg
}

func (d *CompanyDetailsState) Done(f Field) {
	d.Loading[f] = false
}

type ReviewsState struct {
	Last    *models.Review
	Loading bool
	Error   string
}

type SalariesState struct {
	Last       *models.Salary
	Statistics *models.SalaryStatistics
	StatsCache *cache.Pages[models.SalaryStatistics]
	Loading    bool
	Error      string
}

type SearchState struct {
	Query   string
	Kind    string
	Results *models.SearchResults
	Loading bool
	Error   string
}

type AdminState struct {
	PendingReviews  *ReviewPage
	PendingSalaries *SalaryPage
	Loading         bool
	Error           string
}

// State is the whole client view. Values behind pointers are replaced, never
// modified in place, so a shallow copy with cloned maps is a safe snapshot.
type State struct {
	Auth      AuthState
	Profile   ProfileState
	Companies CompaniesState
	Details   CompanyDetailsState
	Reviews   ReviewsState
	Salaries  SalariesState
	Search    SearchState
	Admin     AdminState
}

// SetProfile stores u as the profile and merges it into the authenticated
// user, keeping the two records consistent.
func (s *State) SetProfile(u models.User) {
	s.Profile.Profile = &u
	s.Profile.Error = ""
	merged := u
	if s.Auth.User != nil {
		merged = s.Auth.User.Merge(u)
	}
	s.Auth.User = &merged
}

func (s State) clone() State {
	s.Details.Loading = maps.Clone(s.Details.Loading)
	s.Details.Errors = maps.Clone(s.Details.Errors)
	return s
}

func newState(c *Caches) State {
	return State{
		Details: CompanyDetailsState{
			ReviewCache: c.CompanyReviews.Pages(),
			SalaryCache: c.CompanySalaries.Pages(),
			Loading:     make(map[Field]bool),
			Errors:      make(map[Field]string),
		},
		Salaries: SalariesState{
			StatsCache: c.Statistics.Pages(),
		},
	}
}
