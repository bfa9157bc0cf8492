package api

import (
	"context"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/payscope/internal/client/models"
)

// Search kinds accepted by the server; KindAll searches everything.
const (
	KindAll       = ""
	KindCompanies = "companies"
	KindReviews   = "reviews"
	KindSalaries  = "salaries"
)

func (c *Client) Search(ctx context.Context, query, kind string) (models.SearchResults, error) {
	var out models.SearchResults
	query = strings.TrimSpace(query)
	if err := requireID("search query", query); err != nil {
		return out, err
	}
	q := url.Values{"q": {query}}
	if kind != KindAll {
		q.Set("type", kind)
	}
	err := c.get(ctx, "/search", q, &out)
	return out, err
}
