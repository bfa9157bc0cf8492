package api

import (
	"context"
	"net/url"

	"github.com/dmitrijs2005/payscope/internal/client/cache"
	"github.com/dmitrijs2005/payscope/internal/client/models"
)

func companyPath(id string, sub string) string {
	return "/companies/" + url.PathEscape(id) + sub
}

func (c *Client) ListCompanies(ctx context.Context, params cache.Params) (models.Page[models.Company], error) {
	var out models.Page[models.Company]
	err := c.get(ctx, "/companies", params.Values(), &out)
	return out, err
}

func (c *Client) GetCompany(ctx context.Context, id string) (models.Company, error) {
	var out models.Company
	if err := requireID("company id", id); err != nil {
		return out, err
	}
	err := c.get(ctx, companyPath(id, ""), nil, &out)
	return out, err
}

func (c *Client) CompanyOverview(ctx context.Context, id string) (models.CompanyOverview, error) {
	var out models.CompanyOverview
	if err := requireID("company id", id); err != nil {
		return out, err
	}
	err := c.get(ctx, companyPath(id, "/overview"), nil, &out)
	return out, err
}

func (c *Client) CompanyTaxes(ctx context.Context, id string) ([]models.Tax, error) {
	var out []models.Tax
	if err := requireID("company id", id); err != nil {
		return nil, err
	}
	err := c.get(ctx, companyPath(id, "/taxes"), nil, &out)
	return out, err
}

func (c *Client) CompanyStocks(ctx context.Context, id string) ([]models.Stock, error) {
	var out []models.Stock
	if err := requireID("company id", id); err != nil {
		return nil, err
	}
	err := c.get(ctx, companyPath(id, "/stocks"), nil, &out)
	return out, err
}

func (c *Client) CompanyReviews(ctx context.Context, id string, params cache.Params) (models.Page[models.Review], error) {
	var out models.Page[models.Review]
	if err := requireID("company id", id); err != nil {
		return out, err
	}
	err := c.get(ctx, companyPath(id, "/reviews"), params.Values(), &out)
	return out, err
}

func (c *Client) CompanySalaries(ctx context.Context, id string, params cache.Params) (models.Page[models.Salary], error) {
	var out models.Page[models.Salary]
	if err := requireID("company id", id); err != nil {
		return out, err
	}
	err := c.get(ctx, companyPath(id, "/salaries"), params.Values(), &out)
	return out, err
}
