package services

import (
	"context"

	"github.com/dmitrijs2005/payscope/internal/client/cache"
	"github.com/dmitrijs2005/payscope/internal/client/models"
	"github.com/dmitrijs2005/payscope/internal/client/state"
	"golang.org/x/sync/errgroup"
)

// CompanyIDParam is the cache-key parameter scoping cached pages to a company.
const CompanyIDParam = "companyId"

// DetailsService loads the parts of a company page. Review and salary pages
// are cached by their query parameters plus the company id.
type DetailsService struct {
	base
	api       CompanyAPI
	companies *CompanyService
}

// loadField fetches one company-page field, tracking its own loading and
// error state.
func loadField[T any](ctx context.Context, d *DetailsService, companyID string, f state.Field,
	fetch func(context.Context) (T, error), set func(*state.CompanyDetailsState, T)) (T, error) {
	gen := d.store.Generation()
	d.store.Dispatch(gen, func(s *state.State) {
		d.selectCompany(s, companyID)
		s.Details.Begin(f)
	})

	v, err := fetch(ctx)
	if err != nil {
		return v, d.fail(ctx, gen, "details."+string(f), err, func(s *state.State, msg string) {
			if s.Details.CompanyID == companyID {
				s.Details.Fail(f, msg)
			}
		})
	}

	d.store.Dispatch(gen, func(s *state.State) {
		if s.Details.CompanyID != companyID {
			return
		}
		s.Details.Done(f)
		set(&s.Details, v)
	})
	return v, nil
}

// selectCompany switches the details slice to companyID, dropping the
// previous company's fields. Caches are kept.
func (d *DetailsService) selectCompany(s *state.State, companyID string) {
	if s.Details.CompanyID == companyID {
		return
	}
	s.Details = state.CompanyDetailsState{
		CompanyID:   companyID,
		ReviewCache: s.Details.ReviewCache,
		SalaryCache: s.Details.SalaryCache,
		Loading:     make(map[state.Field]bool),
		Errors:      make(map[state.Field]string),
	}
}

func (d *DetailsService) Overview(ctx context.Context, companyID string) (models.CompanyOverview, error) {
	return loadField(ctx, d, companyID, state.FieldOverview,
		func(ctx context.Context) (models.CompanyOverview, error) { return d.api.CompanyOverview(ctx, companyID) },
		func(s *state.CompanyDetailsState, v models.CompanyOverview) { s.Overview = &v })
}

func (d *DetailsService) Taxes(ctx context.Context, companyID string) ([]models.Tax, error) {
	return loadField(ctx, d, companyID, state.FieldTaxes,
		func(ctx context.Context) ([]models.Tax, error) { return d.api.CompanyTaxes(ctx, companyID) },
		func(s *state.CompanyDetailsState, v []models.Tax) { s.Taxes = v })
}

func (d *DetailsService) Stocks(ctx context.Context, companyID string) ([]models.Stock, error) {
	return loadField(ctx, d, companyID, state.FieldStocks,
		func(ctx context.Context) ([]models.Stock, error) { return d.api.CompanyStocks(ctx, companyID) },
		func(s *state.CompanyDetailsState, v []models.Stock) { s.Stocks = v })
}

// Reviews returns a page of the company's reviews. A cached page is served
// without a request.
func (d *DetailsService) Reviews(ctx context.Context, companyID string, params cache.Params) (state.ReviewPage, error) {
	key := cache.Key(params.With(CompanyIDParam, companyID))
	loader := d.store.Caches().CompanyReviews

	return cachedField(ctx, d, companyID, state.FieldReviews, loader, key,
		func(ctx context.Context) (state.ReviewPage, error) { return d.api.CompanyReviews(ctx, companyID, params) },
		func(s *state.CompanyDetailsState, v state.ReviewPage) { s.Reviews = &v })
}

// Salaries returns a page of the company's salaries, cached like Reviews.
func (d *DetailsService) Salaries(ctx context.Context, companyID string, params cache.Params) (state.SalaryPage, error) {
	key := cache.Key(params.With(CompanyIDParam, companyID))
	loader := d.store.Caches().CompanySalaries

	return cachedField(ctx, d, companyID, state.FieldSalaries, loader, key,
		func(ctx context.Context) (state.SalaryPage, error) { return d.api.CompanySalaries(ctx, companyID, params) },
		func(s *state.CompanyDetailsState, v state.SalaryPage) { s.Salaries = &v })
}

func cachedField[T any](ctx context.Context, d *DetailsService, companyID string, f state.Field,
	loader *cache.Loader[T], key string,
	fetch func(context.Context) (T, error), set func(*state.CompanyDetailsState, T)) (T, error) {
	if v, ok := loader.Pages().Get(key); ok {
		d.log.Debug(ctx, "cache hit", "field", string(f), "key", key)
		d.store.Dispatch(d.store.Generation(), func(s *state.State) {
			d.selectCompany(s, companyID)
			set(&s.Details, v)
		})
		return v, nil
	}

	return loadField(ctx, d, companyID, f,
		func(ctx context.Context) (T, error) {
			v, _, err := loader.Load(ctx, key, fetch)
			return v, err
		}, set)
}

// LoadCompanyPage fetches the company and all of its page fields
// concurrently. A failing field records its own error and does not stop the
// others; the first failure is returned.
func (d *DetailsService) LoadCompanyPage(ctx context.Context, companyID string) error {
	gen := d.store.Generation()
	d.store.Dispatch(gen, func(s *state.State) { d.selectCompany(s, companyID) })

	var g errgroup.Group
	g.Go(func() error {
		_, err := loadField(ctx, d, companyID, state.FieldCompany,
			func(ctx context.Context) (models.Company, error) { return d.companies.Get(ctx, companyID) },
			func(*state.CompanyDetailsState, models.Company) {})
		return err
	})
	g.Go(func() error { _, err := d.Overview(ctx, companyID); return err })
	g.Go(func() error { _, err := d.Taxes(ctx, companyID); return err })
	g.Go(func() error { _, err := d.Stocks(ctx, companyID); return err })
	g.Go(func() error { _, err := d.Reviews(ctx, companyID, nil); return err })
	g.Go(func() error { _, err := d.Salaries(ctx, companyID, nil); return err })
	return g.Wait()
}

// ClearCache empties the company review and salary caches.
func (d *DetailsService) ClearCache() {
	c := d.store.Caches()
	c.CompanyReviews.Pages().Clear()
	c.CompanySalaries.Pages().Clear()
}
