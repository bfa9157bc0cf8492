package cli

import (
	"context"
	"io"

	"github.com/dmitrijs2005/payscope/internal/buildinfo"
	"github.com/dmitrijs2005/payscope/internal/client/api"
	"github.com/dmitrijs2005/payscope/internal/client/cache"
	"github.com/dmitrijs2005/payscope/internal/client/config"
	"github.com/spf13/cobra"
)

// appFactory builds the App a command runs against. It is a test seam.
type appFactory func(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) (*App, error)

// NewRootCommand returns the payscope command tree. cfg already carries
// defaults, file and environment values; flags parsed by cobra override them.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	return newRootCommand(cfg, NewApp)
}

func newRootCommand(cfg *config.Config, newApp appFactory) *cobra.Command {
	root := &cobra.Command{
		Use:           "payscope",
		Short:         "Browse employer reviews and salaries from the terminal",
		Long:          "payscope is a client for the employer review and salary transparency API. Without a subcommand it starts an interactive shell.",
		Version:       buildinfo.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return cfg.Validate()
		},
	}
	config.BindFlags(root.PersistentFlags(), cfg)

	// withApp runs fn against a fresh App. One-shot commands restore the
	// stored session first so authenticated endpoints work.
	withApp := func(restore bool, fn func(ctx context.Context, a *App, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, cfg, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer a.Close()

			if restore {
				a.restore(ctx)
			}
			if err := fn(ctx, a, args); err != nil {
				return commandError{err}
			}
			return nil
		}
	}

	root.RunE = withApp(false, func(ctx context.Context, a *App, _ []string) error {
		a.Run(ctx)
		return nil
	})

	var email string
	login := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session for later commands",
		Args:  cobra.NoArgs,
		RunE: withApp(false, func(ctx context.Context, a *App, _ []string) error {
			var args []string
			if email != "" {
				args = []string{email}
			}
			return a.Login(ctx, args)
		}),
	}
	login.Flags().StringVarP(&email, "email", "e", "", "account email (prompted when omitted)")

	logout := &cobra.Command{
		Use:   "logout",
		Short: "End the stored session",
		Args:  cobra.NoArgs,
		RunE:  withApp(false, func(ctx context.Context, a *App, args []string) error { return a.Logout(ctx, args) }),
	}

	whoami := &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE:  withApp(true, func(ctx context.Context, a *App, args []string) error { return a.WhoAmI(ctx, args) }),
	}

	var page, limit int
	companies := &cobra.Command{
		Use:     "companies [key=value...]",
		Short:   "List companies, e.g. companies industry=fintech page=2",
		Example: "payscope companies location=Riga sort=rating --page 2 --limit 20",
	}
	companies.RunE = withApp(true, func(ctx context.Context, a *App, args []string) error {
		params := cache.ParseParams(args)
		if companies.Flags().Changed("page") {
			params.SetInt("page", page)
		}
		if companies.Flags().Changed("limit") {
			params.SetInt("limit", limit)
		}
		return a.listCompanies(ctx, params)
	})
	companies.Flags().IntVarP(&page, "page", "p", 0, "page number (0 uses the server default)")
	companies.Flags().IntVarP(&limit, "limit", "l", 0, "page size (0 uses the server default)")

	company := &cobra.Command{
		Use:   "company <id>",
		Short: "Show a company page with overview, taxes, stocks, reviews and salaries",
		Args:  cobra.ExactArgs(1),
		RunE:  withApp(true, func(ctx context.Context, a *App, args []string) error { return a.Company(ctx, args) }),
	}

	var kind string
	search := &cobra.Command{
		Use:   "search <query>",
		Short: "Search companies, reviews and salaries",
		Args:  cobra.MinimumNArgs(1),
		RunE: withApp(true, func(ctx context.Context, a *App, args []string) error {
			if kind != "" {
				args[0] = kind + ":" + args[0]
			}
			return a.Search(ctx, args)
		}),
	}
	search.Flags().StringVarP(&kind, "type", "t", "", "restrict to "+api.KindCompanies+"|"+api.KindReviews+"|"+api.KindSalaries)

	stats := &cobra.Command{
		Use:     "stats [key=value...]",
		Short:   "Show salary statistics for a filter",
		Example: "payscope stats jobTitle=engineer location=Riga",
		RunE:    withApp(true, func(ctx context.Context, a *App, args []string) error { return a.Stats(ctx, args) }),
	}

	root.AddCommand(login, logout, whoami, companies, company, search, stats)
	return root
}

// commandError presents a failed command with its user-facing message.
type commandError struct{ err error }

func (e commandError) Error() string { return api.ErrorMessage(e.err) }
func (e commandError) Unwrap() error { return e.err }
