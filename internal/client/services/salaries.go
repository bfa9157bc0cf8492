package services

import (
	"context"

	"github.com/dmitrijs2005/payscope/internal/client/cache"
	"github.com/dmitrijs2005/payscope/internal/client/models"
	"github.com/dmitrijs2005/payscope/internal/client/state"
)

type SalaryService struct {
	base
	api SalaryAPI
}

func salariesFailed(s *state.State, msg string) {
	s.Salaries.Loading = false
	s.Salaries.Error = msg
}

func (r *SalaryService) begin() uint64 {
	gen := r.store.Generation()
	r.store.Dispatch(gen, func(s *state.State) {
		s.Salaries.Loading = true
		s.Salaries.Error = ""
	})
	return gen
}

// Submit reports a salary. Cached salary pages and statistics become stale.
func (r *SalaryService) Submit(ctx context.Context, in models.SalaryInput) (models.Salary, error) {
	gen := r.begin()

	salary, err := r.api.SubmitSalary(ctx, in)
	if err != nil {
		return salary, r.fail(ctx, gen, "salaries.submit", err, salariesFailed)
	}

	c := r.store.Caches()
	c.CompanySalaries.Pages().DeleteFunc(func(k string) bool { return cache.KeyHas(k, CompanyIDParam, in.CompanyID) })
	c.MySalaries.Pages().Clear()
	c.Statistics.Pages().Clear()

	r.store.Dispatch(gen, func(s *state.State) {
		s.Salaries.Loading = false
		s.Salaries.Last = &salary
	})
	r.log.Info(ctx, "salary submitted", "salary", salary.ID, "company", in.CompanyID)
	return salary, nil
}

func (r *SalaryService) Delete(ctx context.Context, id string) error {
	gen := r.begin()

	if err := r.api.DeleteSalary(ctx, id); err != nil {
		return r.fail(ctx, gen, "salaries.delete", err, salariesFailed)
	}

	c := r.store.Caches()
	c.CompanySalaries.Pages().Clear()
	c.MySalaries.Pages().Clear()
	c.Statistics.Pages().Clear()

	r.store.Dispatch(gen, func(s *state.State) {
		s.Salaries.Loading = false
		if s.Salaries.Last != nil && s.Salaries.Last.ID == id {
			s.Salaries.Last = nil
		}
	})
	return nil
}

// Statistics returns aggregated salaries for params, cached by params.
func (r *SalaryService) Statistics(ctx context.Context, params cache.Params) (models.SalaryStatistics, error) {
	key := cache.Key(params)
	loader := r.store.Caches().Statistics
	gen := r.begin()

	stats, hit, err := loader.Load(ctx, key, func(ctx context.Context) (models.SalaryStatistics, error) {
		return r.api.SalaryStatistics(ctx, params)
	})
	if err != nil {
		return stats, r.fail(ctx, gen, "salaries.statistics", err, salariesFailed)
	}
	r.log.Debug(ctx, "salary statistics", "key", key, "cached", hit)

	r.store.Dispatch(gen, func(s *state.State) {
		s.Salaries.Loading = false
		s.Salaries.Statistics = &stats
	})
	return stats, nil
}
