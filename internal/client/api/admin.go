package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/payscope/internal/client/cache"
	"github.com/dmitrijs2005/payscope/internal/client/models"
)

// Decision is a moderation verdict.
type Decision string

const (
	Approve Decision = "approve"
	Reject  Decision = "reject"
)

func (d Decision) valid() bool {
	return d == Approve || d == Reject
}

func (c *Client) PendingReviews(ctx context.Context, params cache.Params) (models.Page[models.Review], error) {
	var out models.Page[models.Review]
	err := c.get(ctx, "/admin/reviews/pending", params.Values(), &out)
	return out, err
}

func (c *Client) PendingSalaries(ctx context.Context, params cache.Params) (models.Page[models.Salary], error) {
	var out models.Page[models.Salary]
	err := c.get(ctx, "/admin/salaries/pending", params.Values(), &out)
	return out, err
}

func (c *Client) ModerateReview(ctx context.Context, id string, d Decision) error {
	return c.moderate(ctx, "reviews", id, d)
}

func (c *Client) ModerateSalary(ctx context.Context, id string, d Decision) error {
	return c.moderate(ctx, "salaries", id, d)
}

func (c *Client) moderate(ctx context.Context, resource, id string, d Decision) error {
	if err := requireID("id", id); err != nil {
		return err
	}
	if !d.valid() {
		return &APIError{Err: ErrValidation, Message: fmt.Sprintf("unknown decision %q", d)}
	}
	path := fmt.Sprintf("/admin/%s/%s/%s", resource, url.PathEscape(id), d)
	return c.send(ctx, http.MethodPut, path, nil, nil)
}
