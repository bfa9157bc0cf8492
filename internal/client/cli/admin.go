package cli

import (
	"context"

	"github.com/dmitrijs2005/payscope/internal/client/api"
	"github.com/dmitrijs2005/payscope/internal/client/services"
)

func (a *App) Pending(ctx context.Context, _ []string) error {
	reviews, salaries, err := a.svc.Admin.LoadPending(ctx)
	if err != nil {
		return err
	}
	a.view.line("Pending reviews (%d):", reviews.Total)
	a.view.reviews(reviews)
	a.view.line("Pending salaries (%d):", salaries.Total)
	a.view.salaries(salaries)
	return nil
}

// Moderate handles "approve|reject review|salary <id>".
func (a *App) Moderate(ctx context.Context, d api.Decision, args []string) error {
	if len(args) < 2 {
		return usageError(string(d) + " review|salary <id>")
	}
	kind, err := services.ParseKind(args[0])
	if err != nil {
		return err
	}

	if d == api.Approve {
		err = a.svc.Admin.Approve(ctx, kind, args[1])
	} else {
		err = a.svc.Admin.Reject(ctx, kind, args[1])
	}
	if err != nil {
		return err
	}
	a.view.line("%s %s: %s.", kind, args[1], d)
	return nil
}
