package services

import (
	"context"

	"github.com/dmitrijs2005/payscope/internal/client/cache"
	"github.com/dmitrijs2005/payscope/internal/client/models"
	"github.com/dmitrijs2005/payscope/internal/client/state"
)

type ProfileService struct {
	base
	api ProfileAPI
}

func profileFailed(s *state.State, msg string) {
	s.Profile.Loading = false
	s.Profile.Error = msg
}

func (p *ProfileService) begin() uint64 {
	gen := p.store.Generation()
	p.store.Dispatch(gen, func(s *state.State) {
		s.Profile.Loading = true
		s.Profile.Error = ""
	})
	return gen
}

// Fetch reloads the profile and keeps the authenticated user in sync.
func (p *ProfileService) Fetch(ctx context.Context) (models.User, error) {
	gen := p.begin()

	u, err := p.api.GetProfile(ctx)
	if err != nil {
		return u, p.fail(ctx, gen, "profile.fetch", err, profileFailed)
	}

	p.store.Dispatch(gen, func(s *state.State) {
		s.Profile.Loading = false
		s.SetProfile(u)
	})
	return u, nil
}

// Update edits the profile and patches the authenticated user with the result.
func (p *ProfileService) Update(ctx context.Context, in models.ProfileInput) (models.User, error) {
	gen := p.begin()

	u, err := p.api.UpdateProfile(ctx, in)
	if err != nil {
		return u, p.fail(ctx, gen, "profile.update", err, profileFailed)
	}

	p.store.Dispatch(gen, func(s *state.State) {
		s.Profile.Loading = false
		s.SetProfile(u)
	})
	return u, nil
}

// MyReviews lists the user's own reviews, cached by params.
func (p *ProfileService) MyReviews(ctx context.Context, params cache.Params) (state.ReviewPage, error) {
	key := cache.Key(params)
	loader := p.store.Caches().MyReviews
	gen := p.begin()

	page, _, err := loader.Load(ctx, key, func(ctx context.Context) (state.ReviewPage, error) {
		return p.api.MyReviews(ctx, params)
	})
	if err != nil {
		return page, p.fail(ctx, gen, "profile.reviews", err, profileFailed)
	}

	p.store.Dispatch(gen, func(s *state.State) {
		s.Profile.Loading = false
		s.Profile.Reviews = &page
	})
	return page, nil
}

// MySalaries lists the user's own salary reports, cached by params.
func (p *ProfileService) MySalaries(ctx context.Context, params cache.Params) (state.SalaryPage, error) {
	key := cache.Key(params)
	loader := p.store.Caches().MySalaries
	gen := p.begin()

	page, _, err := loader.Load(ctx, key, func(ctx context.Context) (state.SalaryPage, error) {
		return p.api.MySalaries(ctx, params)
	})
	if err != nil {
		return page, p.fail(ctx, gen, "profile.salaries", err, profileFailed)
	}

	p.store.Dispatch(gen, func(s *state.State) {
		s.Profile.Loading = false
		s.Profile.Salaries = &page
	})
	return page, nil
}
