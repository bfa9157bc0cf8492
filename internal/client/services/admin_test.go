package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/payscope/internal/client/api"
	"github.com/dmitrijs2005/payscope/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdmin_NonAdminRefusedLocally(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.loginAs(models.User{ID: "u1", Role: models.RoleUser})

	_, _, err := f.svc.Admin.LoadPending(ctx)
	require.ErrorIs(t, err, api.ErrForbidden)
	err = f.svc.Admin.Approve(ctx, KindReview, "r1")
	require.ErrorIs(t, err, api.ErrForbidden)

	assert.Zero(t, f.api.count("PendingReviews"))
	assert.Zero(t, f.api.count("ModerateReview"))
	assert.Equal(t, "This action requires an administrator account.", f.store.Snapshot().Admin.Error)
}

func TestAdmin_AnonymousRefusedLocally(t *testing.T) {
	f := newFixture()
	err := f.svc.Admin.Reject(context.Background(), KindSalary, "s1")
	require.ErrorIs(t, err, api.ErrForbidden)
	assert.Zero(t, f.api.count("ModerateSalary"))
}

func TestAdmin_LoadPendingAndApprove(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.loginAs(models.User{ID: "admin", Role: models.RoleAdmin})

	f.api.PendingReviewsFn = func() (models.Page[models.Review], error) {
		return models.Page[models.Review]{Items: []models.Review{{ID: "r1"}, {ID: "r2"}}, Total: 2}, nil
	}
	f.api.PendingSalariesFn = func() (models.Page[models.Salary], error) {
		return models.Page[models.Salary]{Items: []models.Salary{{ID: "s1"}}, Total: 1}, nil
	}
	var decided []string
	f.api.ModerateFn = func(kind, id string, d api.Decision) error {
		decided = append(decided, kind+":"+id+":"+string(d))
		return nil
	}

	reviews, salaries, err := f.svc.Admin.LoadPending(ctx)
	require.NoError(t, err)
	assert.Len(t, reviews.Items, 2)
	assert.Len(t, salaries.Items, 1)

	_, _ = f.svc.Details.Reviews(ctx, "c1", nil)
	require.NoError(t, f.svc.Admin.Approve(ctx, KindReview, "r1"))
	require.NoError(t, f.svc.Admin.Reject(ctx, KindSalary, "s1"))

	assert.Equal(t, []string{"review:r1:approve", "salary:s1:reject"}, decided)

	snap := f.store.Snapshot()
	require.Len(t, snap.Admin.PendingReviews.Items, 1)
	assert.Equal(t, "r2", snap.Admin.PendingReviews.Items[0].ID)
	assert.Equal(t, 1, snap.Admin.PendingReviews.Total)
	assert.Empty(t, snap.Admin.PendingSalaries.Items)
	assert.Equal(t, 0, snap.Details.ReviewCache.Len())
	assert.Len(t, reviews.Items, 2, "returned page is not mutated")
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("reviews")
	require.NoError(t, err)
	assert.Equal(t, KindReview, k)

	k, err = ParseKind("salary")
	require.NoError(t, err)
	assert.Equal(t, KindSalary, k)

	_, err = ParseKind("company")
	assert.ErrorIs(t, err, api.ErrValidation)
}
