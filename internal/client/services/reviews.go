package services

import (
	"context"

	"github.com/dmitrijs2005/payscope/internal/client/cache"
	"github.com/dmitrijs2005/payscope/internal/client/models"
	"github.com/dmitrijs2005/payscope/internal/client/state"
)

type ReviewService struct {
	base
	api ReviewAPI
}

func reviewsFailed(s *state.State, msg string) {
	s.Reviews.Loading = false
	s.Reviews.Error = msg
}

// Submit posts a review and invalidates the cached review pages it would
// appear in.
func (r *ReviewService) Submit(ctx context.Context, in models.ReviewInput) (models.Review, error) {
	gen := r.store.Generation()
	r.store.Dispatch(gen, func(s *state.State) {
		s.Reviews.Loading = true
		s.Reviews.Error = ""
	})

	review, err := r.api.SubmitReview(ctx, in)
	if err != nil {
		return review, r.fail(ctx, gen, "reviews.submit", err, reviewsFailed)
	}

	c := r.store.Caches()
	c.CompanyReviews.Pages().DeleteFunc(func(k string) bool { return cache.KeyHas(k, CompanyIDParam, in.CompanyID) })
	c.MyReviews.Pages().Clear()

	r.store.Dispatch(gen, func(s *state.State) {
		s.Reviews.Loading = false
		s.Reviews.Last = &review
	})
	r.log.Info(ctx, "review submitted", "review", review.ID, "company", in.CompanyID)
	return review, nil
}

// Delete removes one of the user's reviews.
func (r *ReviewService) Delete(ctx context.Context, id string) error {
	gen := r.store.Generation()
	r.store.Dispatch(gen, func(s *state.State) {
		s.Reviews.Loading = true
		s.Reviews.Error = ""
	})

	if err := r.api.DeleteReview(ctx, id); err != nil {
		return r.fail(ctx, gen, "reviews.delete", err, reviewsFailed)
	}

	c := r.store.Caches()
	c.CompanyReviews.Pages().Clear()
	c.MyReviews.Pages().Clear()

	r.store.Dispatch(gen, func(s *state.State) {
		s.Reviews.Loading = false
		if s.Reviews.Last != nil && s.Reviews.Last.ID == id {
			s.Reviews.Last = nil
		}
	})
	return nil
}
