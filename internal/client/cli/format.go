package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/payscope/internal/client/models"
	"github.com/dmitrijs2005/payscope/internal/client/state"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// view renders API records as plain text. Numbers are grouped for the
// printer's locale.
type view struct {
	w io.Writer
	p *message.Printer
}

func newView(w io.Writer, tag language.Tag) *view {
	return &view{w: w, p: message.NewPrinter(tag)}
}

func (v *view) line(format string, args ...any) {
	v.p.Fprintf(v.w, format+"\n", args...)
}

func stars(rating int) string {
	rating = max(0, min(rating, 5))
	return strings.Repeat("*", rating) + strings.Repeat(".", 5-rating)
}

func (v *view) user(u *models.User) {
	if u == nil {
		v.line("Not logged in.")
		return
	}
	v.line("%s <%s>", u.Username, u.Email)
	v.line("  id: %s  role: %s  verified: %t", u.ID, u.Role, u.Verified)
	v.line("  reviews: %d  salaries: %d", u.ReviewCount, u.SalaryCount)
}

func (v *view) companies(p models.Page[models.Company]) {
	if len(p.Items) == 0 {
		v.line("No companies found.")
		return
	}
	for _, c := range p.Items {
		v.line("%-12s %-30s %-16s %.1f (%d reviews, %d salaries)",
			c.ID, c.Name, c.Industry, c.AverageRating, c.ReviewCount, c.SalaryCount)
	}
	v.pageFooter(p.Page, p.Limit, p.Total, p.HasNext())
}

func (v *view) company(c models.Company) {
	v.line("%s [%s]", c.Name, c.ID)
	v.line("  %s, %s", c.Industry, c.Location)
	if c.Website != "" {
		v.line("  %s", c.Website)
	}
	v.line("  rating %.1f from %d reviews, %d salary reports", c.AverageRating, c.ReviewCount, c.SalaryCount)
}

// details renders the company page from the details slice, one section per
// field, showing a field's own error when it failed.
func (v *view) details(d state.CompanyDetailsState) {
	section := func(f state.Field, empty bool, render func()) {
		v.line("-- %s --", f)
		switch {
		case d.Errors[f] != "":
			v.line("  (unavailable: %s)", d.Errors[f])
		case empty:
			v.line("  (none)")
		default:
			render()
		}
	}

	section(state.FieldOverview, d.Overview == nil, func() {
		o := d.Overview
		v.line("  %s", o.Description)
		if o.Founded != 0 {
			v.line("  founded %d, HQ %s, %s employees, CEO %s", o.Founded, o.Headquarter, o.Employees, o.CEO)
		}
	})
	section(state.FieldTaxes, len(d.Taxes) == 0, func() {
		for _, t := range d.Taxes {
			v.line("  %-10s %-16s %.2f%%", t.Country, t.Kind, t.Rate)
		}
	})
	section(state.FieldStocks, len(d.Stocks) == 0, func() {
		for _, s := range d.Stocks {
			v.line("  %s:%s %.2f %s", s.Exchange, s.Symbol, s.Price, s.Currency)
		}
	})
	section(state.FieldReviews, d.Reviews == nil, func() { v.reviews(*d.Reviews) })
	section(state.FieldSalaries, d.Salaries == nil, func() { v.salaries(*d.Salaries) })
}

func (v *view) reviews(p models.Page[models.Review]) {
	if len(p.Items) == 0 {
		v.line("  No reviews.")
		return
	}
	for _, r := range p.Items {
		status := ""
		if r.Status != "" && r.Status != models.StatusApproved {
			status = " [" + r.Status + "]"
		}
		v.line("  %s %s %q%s", r.ID, stars(r.Rating), r.Title, status)
		if r.JobTitle != "" {
			v.line("      as %s", r.JobTitle)
		}
		if r.Pros != "" {
			v.line("      + %s", r.Pros)
		}
		if r.Cons != "" {
			v.line("      - %s", r.Cons)
		}
	}
	v.pageFooter(p.Page, p.Limit, p.Total, p.HasNext())
}

func (v *view) salaries(p models.Page[models.Salary]) {
	if len(p.Items) == 0 {
		v.line("  No salaries.")
		return
	}
	for _, s := range p.Items {
		status := ""
		if s.Status != "" && s.Status != models.StatusApproved {
			status = " [" + s.Status + "]"
		}
		v.line("  %s %-24s %-14s %d %s (%d yrs)%s",
			s.ID, s.JobTitle, s.Location, s.Amount, s.Currency, s.ExperienceYears, status)
	}
	v.pageFooter(p.Page, p.Limit, p.Total, p.HasNext())
}

func (v *view) statistics(s models.SalaryStatistics) {
	if s.Count == 0 {
		v.line("No salary data for this filter.")
		return
	}
	label := strings.TrimSpace(s.JobTitle + " " + s.Location)
	if label == "" {
		label = "all salaries"
	}
	v.line("%s: %d reports", label, s.Count)
	v.line("  min     %d %s", s.Min, s.Currency)
	v.line("  median  %.0f %s", s.Median, s.Currency)
	v.line("  average %.0f %s", s.Average, s.Currency)
	v.line("  max     %d %s", s.Max, s.Currency)
}

func (v *view) search(r models.SearchResults) {
	if len(r.Companies)+len(r.Reviews)+len(r.Salaries) == 0 {
		v.line("Nothing matches %q.", r.Query)
		return
	}
	if len(r.Companies) > 0 {
		v.line("Companies:")
		for _, c := range r.Companies {
			v.line("  %s %s", c.ID, c.Name)
		}
	}
	if len(r.Reviews) > 0 {
		v.line("Reviews:")
		v.reviews(models.Page[models.Review]{Items: r.Reviews})
	}
	if len(r.Salaries) > 0 {
		v.line("Salaries:")
		v.salaries(models.Page[models.Salary]{Items: r.Salaries})
	}
}

func (v *view) pageFooter(page, limit, total int, hasNext bool) {
	if total == 0 || limit == 0 {
		return
	}
	more := ""
	if hasNext {
		more = fmt.Sprintf(", next: page=%d", page+1)
	}
	v.line("  page %d, %d of %d%s", page, min(limit, total-(page-1)*limit), total, more)
}
