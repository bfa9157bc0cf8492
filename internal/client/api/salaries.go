package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/payscope/internal/client/cache"
	"github.com/dmitrijs2005/payscope/internal/client/models"
)

func (c *Client) SubmitSalary(ctx context.Context, in models.SalaryInput) (models.Salary, error) {
	var out models.Salary
	if err := validateInput(in); err != nil {
		return out, err
	}
	err := c.send(ctx, http.MethodPost, "/salary", in, &out)
	return out, err
}

func (c *Client) DeleteSalary(ctx context.Context, id string) error {
	if err := requireID("salary id", id); err != nil {
		return err
	}
	return c.send(ctx, http.MethodDelete, "/salary/"+url.PathEscape(id), nil, nil)
}

// SalaryStatistics aggregates salaries matching params (jobTitle, location, ...).
func (c *Client) SalaryStatistics(ctx context.Context, params cache.Params) (models.SalaryStatistics, error) {
	var out models.SalaryStatistics
	err := c.get(ctx, "/salary-statistics", params.Values(), &out)
	return out, err
}
