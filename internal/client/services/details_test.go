package services

import (
	"context"
	"sync"
	"testing"

	"github.com/dmitrijs2005/payscope/internal/client/api"
	"github.com/dmitrijs2005/payscope/internal/client/cache"
	"github.com/dmitrijs2005/payscope/internal/client/models"
	"github.com/dmitrijs2005/payscope/internal/client/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetails_ReviewsCacheHitSkipsNetwork(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	first, err := f.svc.Details.Reviews(ctx, "c1", cache.Params{"page": "1", "sort": "recent"})
	require.NoError(t, err)
	require.Equal(t, 1, f.api.count("CompanyReviews"))

	again, err := f.svc.Details.Reviews(ctx, "c1", cache.Params{"sort": "recent", "page": "1", "rating": ""})
	require.NoError(t, err)
	assert.Equal(t, first, again)
	assert.Equal(t, 1, f.api.count("CompanyReviews"))

	snap := f.store.Snapshot()
	require.NotNil(t, snap.Details.Reviews)
	assert.Equal(t, "r-c1", snap.Details.Reviews.Items[0].ID)
	assert.Equal(t, 1, snap.Details.ReviewCache.Len())
}

func TestDetails_CacheKeyIncludesCompany(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.Details.Reviews(ctx, "c1", cache.Params{"page": "1"})
	require.NoError(t, err)
	p2, err := f.svc.Details.Reviews(ctx, "c2", cache.Params{"page": "1"})
	require.NoError(t, err)

	assert.Equal(t, 2, f.api.count("CompanyReviews"))
	assert.Equal(t, "r-c2", p2.Items[0].ID)
	assert.Equal(t, "c2", f.store.Snapshot().Details.CompanyID)
}

func TestDetails_ConcurrentMissesShareFetch(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	release := make(chan struct{})
	started := make(chan struct{})
	var once sync.Once
	f.api.CompanyReviewsFn = func(_ context.Context, id string, _ cache.Params) (models.Page[models.Review], error) {
		once.Do(func() { close(started) })
		<-release
		return models.Page[models.Review]{Total: 5}, nil
	}

	var wg sync.WaitGroup
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = f.svc.Details.Reviews(ctx, "c1", cache.Params{"page": "1"})
		}()
	}
	<-started
	close(release)
	wg.Wait()

	assert.Equal(t, 1, f.api.count("CompanyReviews"))
}

func TestDetails_FailureIsNotCached(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	fail := true
	f.api.CompanySalariesFn = func(id string, _ cache.Params) (models.Page[models.Salary], error) {
		if fail {
			return models.Page[models.Salary]{}, &api.APIError{Status: 500, Err: api.ErrUnavailable}
		}
		return models.Page[models.Salary]{Total: 2}, nil
	}

	_, err := f.svc.Details.Salaries(ctx, "c1", nil)
	require.ErrorIs(t, err, api.ErrUnavailable)
	snap := f.store.Snapshot()
	assert.NotEmpty(t, snap.Details.Errors[state.FieldSalaries])
	assert.False(t, snap.Details.Loading[state.FieldSalaries])

	fail = false
	page, err := f.svc.Details.Salaries(ctx, "c1", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, 2, f.api.count("CompanySalaries"))
	assert.NotContains(t, f.store.Snapshot().Details.Errors, state.FieldSalaries)
}

func TestDetails_LoadCompanyPageIsolatesFieldErrors(t *testing.T) {
	f := newFixture()
	f.api.TaxesFn = func(string) ([]models.Tax, error) {
		return nil, &api.APIError{Status: 404, Err: api.ErrNotFound}
	}
	f.api.StocksFn = func(string) ([]models.Stock, error) {
		return []models.Stock{{Symbol: "ACME"}}, nil
	}

	err := f.svc.Details.LoadCompanyPage(context.Background(), "c1")
	require.ErrorIs(t, err, api.ErrNotFound)

	snap := f.store.Snapshot()
	assert.Equal(t, "c1", snap.Details.CompanyID)
	assert.Equal(t, "The requested item was not found.", snap.Details.Errors[state.FieldTaxes])
	assert.Len(t, snap.Details.Errors, 1)
	require.NotNil(t, snap.Details.Overview)
	assert.Equal(t, "c1", snap.Details.Overview.CompanyID)
	assert.Equal(t, "ACME", snap.Details.Stocks[0].Symbol)
	assert.NotNil(t, snap.Details.Reviews)
	assert.NotNil(t, snap.Details.Salaries)
	require.NotNil(t, snap.Companies.Selected)
	assert.Equal(t, "c1", snap.Companies.Selected.ID)
	for field, loading := range snap.Details.Loading {
		assert.False(t, loading, "field %s still loading", field)
	}
}

func TestDetails_SwitchingCompanyDropsFieldsKeepsCache(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	require.NoError(t, f.svc.Details.LoadCompanyPage(ctx, "c1"))
	_, err := f.svc.Details.Overview(ctx, "c2")
	require.NoError(t, err)

	snap := f.store.Snapshot()
	assert.Equal(t, "c2", snap.Details.CompanyID)
	assert.Nil(t, snap.Details.Reviews)
	assert.Equal(t, 1, snap.Details.ReviewCache.Len())
}

func TestDetails_ClearCache(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, _ = f.svc.Details.Reviews(ctx, "c1", nil)
	_, _ = f.svc.Details.Salaries(ctx, "c1", nil)
	f.svc.Details.ClearCache()

	snap := f.store.Snapshot()
	assert.Equal(t, 0, snap.Details.ReviewCache.Len())
	assert.Equal(t, 0, snap.Details.SalaryCache.Len())

	_, _ = f.svc.Details.Reviews(ctx, "c1", nil)
	assert.Equal(t, 2, f.api.count("CompanyReviews"))
}

func TestDetails_LateFetchAfterResetIsDropped(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	release := make(chan struct{})
	started := make(chan struct{})
	f.api.CompanyReviewsFn = func(context.Context, string, cache.Params) (models.Page[models.Review], error) {
		close(started)
		<-release
		return models.Page[models.Review]{Total: 9}, nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = f.svc.Details.Reviews(ctx, "c1", nil)
	}()
	<-started
	f.store.Reset()
	close(release)
	<-done

	snap := f.store.Snapshot()
	assert.Empty(t, snap.Details.CompanyID)
	assert.Nil(t, snap.Details.Reviews)
	assert.Equal(t, 0, snap.Details.ReviewCache.Len())
}
