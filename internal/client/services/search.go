package services

import (
	"context"

	"github.com/dmitrijs2005/payscope/internal/client/models"
	"github.com/dmitrijs2005/payscope/internal/client/state"
)

type SearchService struct {
	base
	api SearchAPI
}

func (r *SearchService) Search(ctx context.Context, query, kind string) (models.SearchResults, error) {
	gen := r.store.Generation()
	r.store.Dispatch(gen, func(s *state.State) {
		s.Search.Query = query
		s.Search.Kind = kind
		s.Search.Loading = true
		s.Search.Error = ""
	})

	res, err := r.api.Search(ctx, query, kind)
	if err != nil {
		return res, r.fail(ctx, gen, "search", err, func(s *state.State, msg string) {
			s.Search.Loading = false
			s.Search.Error = msg
		})
	}

	r.store.Dispatch(gen, func(s *state.State) {
		s.Search.Loading = false
		s.Search.Results = &res
	})
	return res, nil
}
