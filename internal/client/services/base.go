package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/payscope/internal/client/api"
	"github.com/dmitrijs2005/payscope/internal/client/state"
	"github.com/dmitrijs2005/payscope/internal/logging"
)

// base is embedded by every service.
type base struct {
	store *state.Store
	log   logging.Logger
}

// fail logs err, stores its user-facing message via set, and returns err.
func (b *base) fail(ctx context.Context, gen uint64, op string, err error, set func(*state.State, string)) error {
	msg := api.ErrorMessage(err)

	args := []any{"op", op, "error", err}
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		args = append(args, "status", apiErr.Status, "request_id", apiErr.RequestID)
	}
	if errors.Is(err, api.ErrUnavailable) {
		b.log.Error(ctx, "request failed", args...)
	} else {
		b.log.Warn(ctx, "request failed", args...)
	}

	b.store.Dispatch(gen, func(s *state.State) { set(s, msg) })
	return err
}
