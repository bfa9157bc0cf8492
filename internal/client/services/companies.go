package services

import (
	"context"

	"github.com/dmitrijs2005/payscope/internal/client/cache"
	"github.com/dmitrijs2005/payscope/internal/client/models"
	"github.com/dmitrijs2005/payscope/internal/client/state"
)

type CompanyService struct {
	base
	api CompanyAPI
}

func companiesFailed(s *state.State, msg string) {
	s.Companies.Loading = false
	s.Companies.Error = msg
}

func (c *CompanyService) List(ctx context.Context, params cache.Params) (models.Page[models.Company], error) {
	gen := c.store.Generation()
	c.store.Dispatch(gen, func(s *state.State) {
		s.Companies.Loading = true
		s.Companies.Error = ""
	})

	page, err := c.api.ListCompanies(ctx, params)
	if err != nil {
		return page, c.fail(ctx, gen, "companies.list", err, companiesFailed)
	}

	c.store.Dispatch(gen, func(s *state.State) {
		s.Companies.Loading = false
		s.Companies.List = &page
	})
	return page, nil
}

func (c *CompanyService) Get(ctx context.Context, id string) (models.Company, error) {
	gen := c.store.Generation()
	c.store.Dispatch(gen, func(s *state.State) {
		s.Companies.Loading = true
		s.Companies.Error = ""
	})

	company, err := c.api.GetCompany(ctx, id)
	if err != nil {
		return company, c.fail(ctx, gen, "companies.get", err, companiesFailed)
	}

	c.store.Dispatch(gen, func(s *state.State) {
		s.Companies.Loading = false
		s.Companies.Selected = &company
	})
	return company, nil
}
