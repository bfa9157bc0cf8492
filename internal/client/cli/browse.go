package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/payscope/internal/client/api"
	"github.com/dmitrijs2005/payscope/internal/client/cache"
)

var errUsage = errors.New("usage")

// usageError carries the usage line of a command given bad arguments.
type usageError string

func (e usageError) Error() string { return "usage: " + string(e) }
func (e usageError) Unwrap() error { return errUsage }

// parseArgs turns "k=v" tokens into query parameters.
func parseArgs(args []string) cache.Params {
	return cache.ParseParams(args)
}

func (a *App) Companies(ctx context.Context, args []string) error {
	return a.listCompanies(ctx, parseArgs(args))
}

func (a *App) listCompanies(ctx context.Context, params cache.Params) error {
	page, err := a.svc.Companies.List(ctx, params)
	if err != nil {
		return err
	}
	a.view.companies(page)
	return nil
}

// Company loads and prints the whole company page. Fields that failed are
// shown with their own error; the command itself only fails when the
// company could not be loaded.
func (a *App) Company(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("company <id>")
	}
	id := args[0]

	err := a.svc.Details.LoadCompanyPage(ctx, id)
	snap := a.store.Snapshot()
	if snap.Companies.Selected == nil || snap.Companies.Selected.ID != id {
		if err == nil {
			err = api.ErrNotFound
		}
		return err
	}
	if err != nil {
		a.log.Debug(ctx, "company page partially loaded", "company", id, "error", err)
	}

	a.view.company(*snap.Companies.Selected)
	a.view.details(snap.Details)
	return nil
}

func (a *App) Reviews(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("reviews <company-id> [page=N sort=...]")
	}
	page, err := a.svc.Details.Reviews(ctx, args[0], parseArgs(args[1:]))
	if err != nil {
		return err
	}
	a.view.reviews(page)
	return nil
}

func (a *App) Salaries(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("salaries <company-id> [page=N jobTitle=...]")
	}
	page, err := a.svc.Details.Salaries(ctx, args[0], parseArgs(args[1:]))
	if err != nil {
		return err
	}
	a.view.salaries(page)
	return nil
}

func (a *App) Stats(ctx context.Context, args []string) error {
	stats, err := a.svc.Salaries.Statistics(ctx, parseArgs(args))
	if err != nil {
		return err
	}
	a.view.statistics(stats)
	return nil
}

// Search runs a global search. A leading "companies:", "reviews:" or
// "salaries:" restricts the kind of results.
func (a *App) Search(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("search [companies:|reviews:|salaries:]<query>")
	}
	query := strings.Join(args, " ")
	kind := api.KindAll
	if prefix, rest, ok := strings.Cut(query, ":"); ok {
		switch prefix {
		case api.KindCompanies, api.KindReviews, api.KindSalaries:
			kind, query = prefix, rest
		}
	}

	res, err := a.svc.Search.Search(ctx, query, kind)
	if err != nil {
		return err
	}
	a.view.search(res)
	return nil
}

func (a *App) MyReviews(ctx context.Context, args []string) error {
	page, err := a.svc.Profile.MyReviews(ctx, parseArgs(args))
	if err != nil {
		return err
	}
	a.view.reviews(page)
	return nil
}

func (a *App) MySalaries(ctx context.Context, args []string) error {
	page, err := a.svc.Profile.MySalaries(ctx, parseArgs(args))
	if err != nil {
		return err
	}
	a.view.salaries(page)
	return nil
}

func (a *App) ClearCache(context.Context, []string) error {
	a.svc.Details.ClearCache()
	a.view.line("Cache cleared.")
	return nil
}
