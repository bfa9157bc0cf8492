package state

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/dmitrijs2005/payscope/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_DispatchAppliesForCurrentGeneration(t *testing.T) {
	s := NewStore()
	gen := s.Generation()

	ok := s.Dispatch(gen, func(st *State) {
		st.Auth.Status = Authenticated
		st.Auth.User = &models.User{ID: "u1"}
	})
	require.True(t, ok)

	snap := s.Snapshot()
	assert.Equal(t, Authenticated, snap.Auth.Status)
	assert.Equal(t, "u1", snap.Auth.User.ID)
}

func TestStore_ResetDropsLateWrites(t *testing.T) {
	s := NewStore()
	old := s.Generation()
	s.Dispatch(old, func(st *State) { st.Auth.Status = Authenticated })

	next := s.Reset()
	assert.NotEqual(t, old, next)
	assert.Equal(t, Anonymous, s.Snapshot().Auth.Status)

	ok := s.Dispatch(old, func(st *State) {
		st.Auth.Status = Authenticated
		st.Auth.User = &models.User{ID: "ghost"}
	})
	assert.False(t, ok)
	assert.Nil(t, s.Snapshot().Auth.User)
}

func TestStore_ResetReplacesCaches(t *testing.T) {
	s := NewStore()
	before := s.Caches()
	before.CompanyReviews.Pages().Put("companyId:c1", ReviewPage{Total: 1})
	assert.Equal(t, 1, s.Snapshot().Details.ReviewCache.Len())

	s.Reset()

	after := s.Caches()
	assert.NotSame(t, before, after)
	assert.Equal(t, 0, after.CompanyReviews.Pages().Len())
	assert.Same(t, after.CompanyReviews.Pages(), s.Snapshot().Details.ReviewCache)
	assert.Same(t, after.Statistics.Pages(), s.Snapshot().Salaries.StatsCache)
}

func TestStore_SnapshotIsolatesMaps(t *testing.T) {
	s := NewStore()
	s.Dispatch(s.Generation(), func(st *State) { st.Details.Begin(FieldTaxes) })

	snap := s.Snapshot()
	snap.Details.Loading[FieldTaxes] = false
	snap.Details.Errors[FieldTaxes] = "mutated"

	again := s.Snapshot()
	assert.True(t, again.Details.Loading[FieldTaxes])
	assert.Empty(t, again.Details.Errors)
}

func TestStore_BeginInitOncePerGeneration(t *testing.T) {
	s := NewStore()

	var wins atomic.Int32
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := s.BeginInit(); ok {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), wins.Load())
	assert.Equal(t, InitRunning, s.Snapshot().Auth.Init)

	s.Reset()
	_, ok := s.BeginInit()
	assert.True(t, ok)
}

func TestStore_DispatchSerializes(t *testing.T) {
	s := NewStore()
	gen := s.Generation()

	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Dispatch(gen, func(st *State) {
				n := 0
				if st.Search.Results != nil {
					n = len(st.Search.Results.Companies)
				}
				st.Search.Results = &models.SearchResults{Companies: make([]models.Company, n+1)}
			})
		}()
	}
	wg.Wait()
	assert.Len(t, s.Snapshot().Search.Results.Companies, 100)
}
