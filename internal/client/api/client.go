package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/payscope/internal/client/models"
	"github.com/dmitrijs2005/payscope/internal/client/storage"
	"github.com/dmitrijs2005/payscope/internal/common"
	"github.com/dmitrijs2005/payscope/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const maxErrorBody = 1 << 20

// Navigator is told when the session is gone and the user must log in again.
type Navigator interface {
	RedirectToLogin()
}

type NavigatorFunc func()

func (f NavigatorFunc) RedirectToLogin() { f() }

// Client talks to the REST API. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  storage.TokenStore
	nav     Navigator
	log     logging.Logger

	refreshGroup singleflight.Group

	mu sync.Mutex
	// armed is true while a session expiry has not been announced yet. It is
	// re-armed whenever a fresh token pair is stored.
	armed bool
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

func WithNavigator(n Navigator) Option {
	return func(c *Client) { c.nav = n }
}

// New returns a Client rooted at baseURL. Resource paths such as
// "/companies" are appended to it verbatim.
func New(baseURL string, tokens storage.TokenStore, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		tokens:  tokens,
		nav:     NavigatorFunc(func() {}),
		log:     logging.Nop(),
		armed:   true,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// request describes one call. public requests (the auth endpoints) are never
// intercepted on 401; retried marks a request already replayed after a
// token refresh.
type request struct {
	method  string
	path    string
	query   url.Values
	body    any
	public  bool
	retried bool
}

// StartSession stores a fresh token pair and re-arms session-expiry handling.
func (c *Client) StartSession(ctx context.Context, pair models.TokenPair) error {
	if err := c.tokens.SetTokens(ctx, pair); err != nil {
		return fmt.Errorf("store tokens: %w", err)
	}
	c.mu.Lock()
	c.armed = true
	c.mu.Unlock()
	return nil
}

// EndSession removes the stored tokens.
func (c *Client) EndSession(ctx context.Context) error {
	if err := c.tokens.Clear(ctx); err != nil {
		return fmt.Errorf("clear tokens: %w", err)
	}
	return nil
}

// Tokens returns the stored token pair.
func (c *Client) Tokens(ctx context.Context) (models.TokenPair, error) {
	return c.tokens.Tokens(ctx)
}

func (c *Client) do(ctx context.Context, r *request, out any) error {
	err := c.roundTrip(ctx, r, out)
	if err == nil || r.public || !errors.Is(err, ErrUnauthorized) {
		return err
	}

	if !r.retried {
		r.retried = true
		if rerr := c.refresh(ctx); rerr != nil {
			if !sessionRejected(rerr) {
				c.log.Warn(ctx, "token refresh failed", "path", r.path, "error", rerr)
				return rerr
			}
			c.expireSession(ctx, r.path)
			return err
		}
		err = c.roundTrip(ctx, r, out)
		if err == nil || !errors.Is(err, ErrUnauthorized) {
			return err
		}
	}

	c.expireSession(ctx, r.path)
	return err
}

// sessionRejected reports whether a refresh failure means the credentials
// are gone. Timeouts and server errors leave the session in place.
func sessionRejected(err error) bool {
	return errors.Is(err, common.ErrRefreshTokenMissing) ||
		errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrForbidden)
}

// expireSession clears credentials and redirects to login, once per session.
func (c *Client) expireSession(ctx context.Context, path string) {
	c.mu.Lock()
	if !c.armed {
		c.mu.Unlock()
		return
	}
	c.armed = false
	c.mu.Unlock()

	if err := c.tokens.Clear(context.WithoutCancel(ctx)); err != nil {
		c.log.Error(ctx, "failed to clear tokens", "error", err)
	}
	c.log.Info(ctx, "session expired, redirecting to login", "path", path)
	c.nav.RedirectToLogin()
}

// refreshTimeout bounds a shared token exchange independently of the callers
// waiting on it.
const refreshTimeout = 30 * time.Second

// refresh exchanges the stored refresh token for a new pair. Concurrent
// callers share one exchange; each waits only as long as its own ctx allows.
func (c *Client) refresh(ctx context.Context) error {
	ch := c.refreshGroup.DoChan("refresh", func() (any, error) {
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), refreshTimeout)
		defer cancel()

		pair, err := c.tokens.Tokens(rctx)
		if err != nil {
			return nil, err
		}
		if pair.RefreshToken == "" {
			return nil, common.ErrRefreshTokenMissing
		}

		next, err := c.Refresh(rctx, pair.RefreshToken)
		if err != nil {
			return nil, err
		}
		if next.RefreshToken == "" {
			next.RefreshToken = pair.RefreshToken
		}
		return nil, c.StartSession(rctx, next)
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Client) roundTrip(ctx context.Context, r *request, out any) error {
	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	logCtx := logging.WithFields(ctx, "request_id", requestID)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	pair, err := c.tokens.Tokens(ctx)
	if err != nil {
		return fmt.Errorf("read tokens: %w", err)
	}
	if pair.AccessToken != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+pair.AccessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		c.log.Debug(logCtx, "api call failed", "method", r.method, "path", r.path, "error", err)
		return &APIError{Err: ErrUnavailable, RequestID: requestID, Cause: err}
	}
	defer resp.Body.Close()

	c.log.Debug(logCtx, "api call", "method", r.method, "path", r.path, "status", resp.StatusCode)

	if resp.StatusCode >= 400 {
		return &APIError{
			Status:    resp.StatusCode,
			Message:   readErrorMessage(resp.Body),
			RequestID: requestID,
			Err:       sentinelFor(resp.StatusCode),
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Status: resp.StatusCode, Err: ErrUnexpected, RequestID: requestID, Cause: err}
	}
	return nil
}

// readErrorMessage extracts "message" or "error" from a JSON error body.
func readErrorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(data) == 0 {
		return ""
	}
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, &request{method: http.MethodGet, path: path, query: query}, out)
}

func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	return c.do(ctx, &request{method: method, path: path, body: body}, out)
}

func (c *Client) sendPublic(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, &request{method: http.MethodPost, path: path, body: body, public: true}, out)
}
