package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/dmitrijs2005/payscope/internal/client/api"
	"github.com/dmitrijs2005/payscope/internal/client/config"
	"github.com/dmitrijs2005/payscope/internal/client/services"
	"github.com/dmitrijs2005/payscope/internal/client/state"
	"github.com/dmitrijs2005/payscope/internal/client/storage"
	"github.com/dmitrijs2005/payscope/internal/filex"
	"github.com/dmitrijs2005/payscope/internal/logging"
	"golang.org/x/text/language"
)

// App wires configuration, persistence, the API client and the services
// together and renders results to the terminal. It is also the client's
// Navigator.
type App struct {
	config *config.Config
	reader *bufio.Reader
	out    io.Writer
	view   *view
	log    logging.Logger

	db     *sql.DB
	client *api.Client
	store  *state.Store
	svc    *services.Services

	// expired is set when the API client gave up on the session and cleared
	// by the next successful login.
	expired atomic.Bool
}

// NewApp opens the token store and builds the service graph. The caller
// must Close the App.
func NewApp(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) (*App, error) {
	log, err := logging.New(os.Stderr, cfg.Log.Options())
	if err != nil {
		return nil, err
	}

	a := &App{
		config: cfg,
		reader: bufio.NewReader(in),
		out:    out,
		view:   newView(out, language.English),
		log:    log,
		store:  state.NewStore(),
	}

	var tokens storage.TokenStore
	if cfg.Ephemeral {
		tokens = storage.NewMemoryTokenStore()
	} else {
		path, err := filex.EnsureParentDir(cfg.DatabasePath)
		if err != nil {
			return nil, err
		}
		db, err := storage.OpenDatabase(ctx, path)
		if err != nil {
			log.Error(ctx, "error initializing database", "path", path, "error", err)
			return nil, err
		}
		a.db = db
		tokens = storage.NewSQLiteTokenStore(db)
	}

	a.client = api.New(cfg.APIBaseURL, tokens,
		api.WithTimeout(cfg.RequestTimeout),
		api.WithLogger(log.With("component", "api")),
		api.WithNavigator(a),
	)
	a.svc = services.New(a.client, a.store, storage.NewSessionStorage(), a, log.With("component", "services"))
	return a, nil
}

func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// RedirectToLogin is called by the API client once per expired session.
func (a *App) RedirectToLogin() {
	a.expired.Store(true)
	a.svc.Auth.SessionExpired()
	fmt.Fprintln(a.out, "Your session has expired. Please log in again (type 'login').")
}

// Reload is called after logout. The store is already reset, so only the
// terminal-side view state is dropped here.
func (a *App) Reload() {
	a.expired.Store(false)
	fmt.Fprintln(a.out, "Logged out.")
}

func (a *App) isLoggedIn() bool {
	return a.store.Snapshot().Auth.Status == state.Authenticated
}

func (a *App) isAdmin() bool {
	return a.store.Snapshot().Auth.User.IsAdmin()
}

// status is the prompt decoration: the user name or the lifecycle state.
func (a *App) status() string {
	auth := a.store.Snapshot().Auth
	switch {
	case auth.Status == state.Authenticated && auth.User != nil:
		return auth.User.Username
	case auth.Status == state.PendingVerification:
		return "verify " + auth.PendingEmail
	case a.expired.Load():
		return "expired"
	default:
		return "guest"
	}
}

// restore re-establishes a stored session before the first command.
func (a *App) restore(ctx context.Context) {
	ok, err := a.svc.Auth.RestoreSession(ctx)
	if err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
		return
	}
	if ok {
		a.view.line("Welcome back, %s.", a.status())
	}
}
