package state

import (
	"sync"

	"github.com/dmitrijs2005/payscope/internal/client/cache"
	"github.com/dmitrijs2005/payscope/internal/client/models"
)

// Caches are the parameter-keyed page caches of one generation.
type Caches struct {
	CompanyReviews  *cache.Loader[ReviewPage]
	CompanySalaries *cache.Loader[SalaryPage]
	MyReviews       *cache.Loader[ReviewPage]
	MySalaries      *cache.Loader[SalaryPage]
	Statistics      *cache.Loader[models.SalaryStatistics]
}

func newCaches() *Caches {
	return &Caches{
		CompanyReviews:  cache.NewLoader(cache.NewPages[ReviewPage]()),
		CompanySalaries: cache.NewLoader(cache.NewPages[SalaryPage]()),
		MyReviews:       cache.NewLoader(cache.NewPages[ReviewPage]()),
		MySalaries:      cache.NewLoader(cache.NewPages[SalaryPage]()),
		Statistics:      cache.NewLoader(cache.NewPages[models.SalaryStatistics]()),
	}
}

// Store owns the State. It is safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	gen    uint64
	state  State
	caches *Caches
}

func NewStore() *Store {
	c := newCaches()
	return &Store{state: newState(c), caches: c}
}

// Generation identifies the current session epoch. Capture it before
// starting asynchronous work and pass it to Dispatch.
func (s *Store) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// Dispatch applies fn if gen is still current and reports whether it did.
// Dispatches never interleave.
func (s *Store) Dispatch(gen uint64, fn func(*State)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return false
	}
	fn(&s.state)
	return true
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Caches returns the caches of the current generation.
func (s *Store) Caches() *Caches {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.caches
}

// Reset discards all state and caches and starts a new generation. Writes
// dispatched for the previous generation are ignored from now on.
func (s *Store) Reset() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.caches = newCaches()
	s.state = newState(s.caches)
	return s.gen
}

// BeginInit claims session restoration for the current generation. It
// returns ok only to the first caller per generation.
func (s *Store) BeginInit() (gen uint64, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Auth.Init != InitIdle {
		return s.gen, false
	}
	s.state.Auth.Init = InitRunning
	return s.gen, true
}
