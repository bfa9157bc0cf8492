package services

import (
	"time"

	"github.com/dmitrijs2005/payscope/internal/client/state"
	"github.com/dmitrijs2005/payscope/internal/client/storage"
	"github.com/dmitrijs2005/payscope/internal/logging"
)

// Services bundles every service around one API client and store.
type Services struct {
	Auth      *AuthService
	Profile   *ProfileService
	Companies *CompanyService
	Details   *DetailsService
	Reviews   *ReviewService
	Salaries  *SalaryService
	Search    *SearchService
	Admin     *AdminService
}

func New(client API, store *state.Store, session *storage.SessionStorage, reloader Reloader, log logging.Logger) *Services {
	b := base{store: store, log: log}
	companies := &CompanyService{base: b, api: client}
	return &Services{
		Auth: &AuthService{
			base:     b,
			api:      client,
			profile:  client,
			session:  session,
			reloader: reloader,
			now:      time.Now,
		},
		Profile:   &ProfileService{base: b, api: client},
		Companies: companies,
		Details:   &DetailsService{base: b, api: client, companies: companies},
		Reviews:   &ReviewService{base: b, api: client},
		Salaries:  &SalaryService{base: b, api: client},
		Search:    &SearchService{base: b, api: client},
		Admin:     &AdminService{base: b, api: client},
	}
}
