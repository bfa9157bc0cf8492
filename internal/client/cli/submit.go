package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/payscope/internal/client/models"
	"github.com/dmitrijs2005/payscope/internal/client/services"
)

// SubmitReview walks the user through a review of the company in args[0].
func (a *App) SubmitReview(ctx context.Context, args []string) error {
	var (
		in  models.ReviewInput
		err error
	)
	if in.CompanyID, err = a.argOrPrompt(args, 0, "Company id"); err != nil {
		return err
	}
	if in.Title, err = getSimpleText(a.reader, "Title", a.out); err != nil {
		return err
	}
	if in.Rating, err = GetInt(a.reader, "Rating (1-5)", 0, a.out); err != nil {
		return err
	}
	if in.JobTitle, err = getSimpleText(a.reader, "Your job title (optional)", a.out); err != nil {
		return err
	}
	if in.Body, err = GetMultiline(a.reader, "Review", a.out); err != nil {
		return err
	}
	if in.Pros, err = getSimpleText(a.reader, "Pros (optional)", a.out); err != nil {
		return err
	}
	if in.Cons, err = getSimpleText(a.reader, "Cons (optional)", a.out); err != nil {
		return err
	}

	r, err := a.svc.Reviews.Submit(ctx, in)
	if err != nil {
		return err
	}
	a.view.line("Review %s submitted and awaiting moderation.", r.ID)
	return nil
}

// SubmitSalary walks the user through a salary report.
func (a *App) SubmitSalary(ctx context.Context, args []string) error {
	var (
		in  models.SalaryInput
		err error
	)
	if in.CompanyID, err = a.argOrPrompt(args, 0, "Company id"); err != nil {
		return err
	}
	if in.JobTitle, err = getSimpleText(a.reader, "Job title", a.out); err != nil {
		return err
	}
	if in.Location, err = getSimpleText(a.reader, "Location", a.out); err != nil {
		return err
	}
	amount, err := GetInt(a.reader, "Yearly amount", 0, a.out)
	if err != nil {
		return err
	}
	in.Amount = int64(amount)
	currency, err := getSimpleText(a.reader, "Currency (e.g. EUR)", a.out)
	if err != nil {
		return err
	}
	in.Currency = strings.ToUpper(currency)
	if in.ExperienceYears, err = GetInt(a.reader, "Years of experience", 0, a.out); err != nil {
		return err
	}

	s, err := a.svc.Salaries.Submit(ctx, in)
	if err != nil {
		return err
	}
	a.view.line("Salary %s submitted and awaiting moderation.", s.ID)
	return nil
}

// Delete removes one of the user's own reviews or salaries.
func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return usageError("delete review|salary <id>")
	}
	kind, err := services.ParseKind(args[0])
	if err != nil {
		return err
	}

	if kind == services.KindReview {
		err = a.svc.Reviews.Delete(ctx, args[1])
	} else {
		err = a.svc.Salaries.Delete(ctx, args[1])
	}
	if err != nil {
		return err
	}
	a.view.line("Deleted %s %s.", kind, args[1])
	return nil
}
