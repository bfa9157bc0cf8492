package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/payscope/internal/client/models"
)

func (c *Client) SubmitReview(ctx context.Context, in models.ReviewInput) (models.Review, error) {
	var out models.Review
	if err := validateInput(in); err != nil {
		return out, err
	}
	err := c.send(ctx, http.MethodPost, "/reviews", in, &out)
	return out, err
}

func (c *Client) DeleteReview(ctx context.Context, id string) error {
	if err := requireID("review id", id); err != nil {
		return err
	}
	return c.send(ctx, http.MethodDelete, "/reviews/"+url.PathEscape(id), nil, nil)
}
