package store

import (
	"context"
	"errors"

	"github.com/abhisek/quizduel/internal/performance"
)

// ErrNotFound is returned when a learner has no stored log.
var ErrNotFound = errors.New("not found")

// LogRepo persists performance logs. Logs are append-only: saving a log
// writes its display name and any records not yet stored.
type LogRepo interface {
	// SaveLog syncs the log to storage. Saving the same log twice is a no-op.
	SaveLog(ctx context.Context, log *performance.Log) error

	// LoadLog returns the stored log for learnerID, or ErrNotFound.
	LoadLog(ctx context.Context, learnerID string) (*performance.Log, error)

	// LoadInto restores every stored log into an empty dst, preserving
	// insertion order.
	LoadInto(ctx context.Context, dst *performance.Store) error
}

var _ LogRepo = (*Store)(nil)
