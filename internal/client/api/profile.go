package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/payscope/internal/client/cache"
	"github.com/dmitrijs2005/payscope/internal/client/models"
)

func (c *Client) GetProfile(ctx context.Context) (models.User, error) {
	var out models.User
	err := c.get(ctx, "/profile", nil, &out)
	return out, err
}

func (c *Client) UpdateProfile(ctx context.Context, in models.ProfileInput) (models.User, error) {
	var out models.User
	if err := validateInput(in); err != nil {
		return out, err
	}
	err := c.send(ctx, http.MethodPut, "/profile", in, &out)
	return out, err
}

func (c *Client) ChangePassword(ctx context.Context, in models.PasswordChange) error {
	if err := validateInput(in); err != nil {
		return err
	}
	return c.send(ctx, http.MethodPut, "/profile/password", in, nil)
}

// MyReviews lists the reviews submitted by the current user.
func (c *Client) MyReviews(ctx context.Context, params cache.Params) (models.Page[models.Review], error) {
	var out models.Page[models.Review]
	err := c.get(ctx, "/profile/reviews", params.Values(), &out)
	return out, err
}

// MySalaries lists the salaries reported by the current user.
func (c *Client) MySalaries(ctx context.Context, params cache.Params) (models.Page[models.Salary], error) {
	var out models.Page[models.Salary]
	err := c.get(ctx, "/profile/salaries", params.Values(), &out)
	return out, err
}
