package services

import (
	"context"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/payscope/internal/client/api"
	"github.com/dmitrijs2005/payscope/internal/client/models"
	"github.com/dmitrijs2005/payscope/internal/client/state"
	"golang.org/x/sync/errgroup"
)

// Kind selects the content type being moderated.
type Kind string

const (
	KindReview Kind = "review"
	KindSalary Kind = "salary"
)

// ParseKind accepts the singular or plural name of a content type.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "review", "reviews":
		return KindReview, nil
	case "salary", "salaries":
		return KindSalary, nil
	}
	return "", &api.APIError{Err: api.ErrValidation, Message: fmt.Sprintf("unknown kind %q, want review or salary", s)}
}

// AdminService moderates pending content. Every operation requires the
// admin role and is refused locally otherwise.
type AdminService struct {
	base
	api AdminAPI
}

var errAdminOnly = &api.APIError{Err: api.ErrForbidden, Message: "This action requires an administrator account."}

func adminFailed(s *state.State, msg string) {
	s.Admin.Loading = false
	s.Admin.Error = msg
}

func (a *AdminService) begin(ctx context.Context, op string) (uint64, error) {
	gen := a.store.Generation()
	if !a.store.Snapshot().Auth.User.IsAdmin() {
		return gen, a.fail(ctx, gen, op, errAdminOnly, adminFailed)
	}
	a.store.Dispatch(gen, func(s *state.State) {
		s.Admin.Loading = true
		s.Admin.Error = ""
	})
	return gen, nil
}

// LoadPending fetches the pending reviews and salaries concurrently.
func (a *AdminService) LoadPending(ctx context.Context) (state.ReviewPage, state.SalaryPage, error) {
	var (
		reviews  state.ReviewPage
		salaries state.SalaryPage
	)
	gen, err := a.begin(ctx, "admin.pending")
	if err != nil {
		return reviews, salaries, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reviews, err = a.api.PendingReviews(gctx, nil)
		return err
	})
	g.Go(func() error {
		var err error
		salaries, err = a.api.PendingSalaries(gctx, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return reviews, salaries, a.fail(ctx, gen, "admin.pending", err, adminFailed)
	}

	a.store.Dispatch(gen, func(s *state.State) {
		s.Admin.Loading = false
		s.Admin.PendingReviews = &reviews
		s.Admin.PendingSalaries = &salaries
	})
	return reviews, salaries, nil
}

func (a *AdminService) Approve(ctx context.Context, kind Kind, id string) error {
	return a.moderate(ctx, kind, id, api.Approve)
}

func (a *AdminService) Reject(ctx context.Context, kind Kind, id string) error {
	return a.moderate(ctx, kind, id, api.Reject)
}

// moderate applies d and drops the item from the pending lists. Approved
// content becomes publicly visible, so company caches are invalidated.
func (a *AdminService) moderate(ctx context.Context, kind Kind, id string, d api.Decision) error {
	op := fmt.Sprintf("admin.%s.%s", d, kind)
	gen, err := a.begin(ctx, op)
	if err != nil {
		return err
	}

	switch kind {
	case KindReview:
		err = a.api.ModerateReview(ctx, id, d)
	case KindSalary:
		err = a.api.ModerateSalary(ctx, id, d)
	default:
		_, err = ParseKind(string(kind))
	}
	if err != nil {
		return a.fail(ctx, gen, op, err, adminFailed)
	}

	c := a.store.Caches()
	if kind == KindReview {
		c.CompanyReviews.Pages().Clear()
	} else {
		c.CompanySalaries.Pages().Clear()
		c.Statistics.Pages().Clear()
	}

	a.store.Dispatch(gen, func(s *state.State) {
		s.Admin.Loading = false
		if kind == KindReview && s.Admin.PendingReviews != nil {
			s.Admin.PendingReviews = without(s.Admin.PendingReviews, func(r models.Review) bool { return r.ID == id })
		}
		if kind == KindSalary && s.Admin.PendingSalaries != nil {
			s.Admin.PendingSalaries = without(s.Admin.PendingSalaries, func(r models.Salary) bool { return r.ID == id })
		}
	})
	a.log.Info(ctx, "moderated", "kind", string(kind), "id", id, "decision", string(d))
	return nil
}

// without returns a copy of p minus the items matching drop.
func without[T any](p *models.Page[T], drop func(T) bool) *models.Page[T] {
	out := *p
	out.Items = slices.DeleteFunc(slices.Clone(p.Items), drop)
	if removed := len(p.Items) - len(out.Items); removed > 0 {
		out.Total -= removed
	}
	return &out
}
