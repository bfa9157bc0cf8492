package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/dmitrijs2005/payscope/internal/client/api"
	"github.com/dmitrijs2005/payscope/internal/client/config"
	"github.com/dmitrijs2005/payscope/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.Ephemeral = true
	return cfg
}

// runRoot executes the command tree with args against backend b.
func runRoot(t *testing.T, b *backend, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	factory := func(_ context.Context, _ *config.Config, _ io.Reader, w io.Writer) (*App, error) {
		return b.app("", w), nil
	}
	root := newRootCommand(cfg, factory)
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommand_Companies(t *testing.T) {
	var query atomic.Value
	b := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query.Store(r.URL.RawQuery)
		respond(w, http.StatusOK, models.Page[models.Company]{
			Items: []models.Company{{ID: "c1", Name: "Acme", Industry: "fintech", ReviewCount: 2500}},
			Page:  1, Limit: 1, Total: 3,
		})
	}))

	out, err := runRoot(t, b, testConfig(), "companies", "industry=fintech", "page=1")
	require.NoError(t, err)
	assert.Equal(t, "industry=fintech&page=1", query.Load())
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "2,500 reviews")
	assert.Contains(t, out, "next: page=2")
}

func TestRootCommand_CompaniesPageFlags(t *testing.T) {
	var query atomic.Value
	b := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query.Store(r.URL.RawQuery)
		respond(w, http.StatusOK, models.Page[models.Company]{})
	}))

	_, err := runRoot(t, b, testConfig(), "companies", "industry=fintech", "page=5", "--page", "3", "--limit", "20")
	require.NoError(t, err)
	assert.Equal(t, "industry=fintech&limit=20&page=3", query.Load())

	_, err = runRoot(t, b, testConfig(), "companies", "page=5", "--page", "0")
	require.NoError(t, err)
	assert.Equal(t, "", query.Load())
}

func TestRootCommand_SearchTypeFlag(t *testing.T) {
	var query atomic.Value
	b := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query.Store(r.URL.RawQuery)
		respond(w, http.StatusOK, models.SearchResults{Query: "acme"})
	}))

	out, err := runRoot(t, b, testConfig(), "search", "--type", "reviews", "acme")
	require.NoError(t, err)
	assert.Equal(t, "q=acme&type=reviews", query.Load())
	assert.Contains(t, out, `Nothing matches "acme".`)
}

func TestRootCommand_ErrorUsesFriendlyMessage(t *testing.T) {
	b := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusInternalServerError, nil)
	}))

	_, err := runRoot(t, b, testConfig(), "companies")
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrUnavailable)
	assert.Equal(t, "The server is unavailable. Please try again later.", err.Error())
}

func TestRootCommand_RejectsInvalidConfig(t *testing.T) {
	var hits atomic.Int32
	b := newBackend(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) { hits.Add(1) }))

	_, err := runRoot(t, b, testConfig(), "--api", "ftp://example.com", "companies")
	require.Error(t, err)
	assert.Zero(t, hits.Load())
}

func TestRootCommand_CompanyNeedsOneArg(t *testing.T) {
	b := newBackend(t, http.NotFoundHandler())

	_, err := runRoot(t, b, testConfig(), "company")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "accepts 1 arg"))
}

func TestRootCommand_Version(t *testing.T) {
	b := newBackend(t, http.NotFoundHandler())

	out, err := runRoot(t, b, testConfig(), "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "payscope version N/A")
}
