package wagerun

import (
	"context"
	"time"
)

// WageRunRepository defines data access for wage runs and their lines.
type WageRunRepository interface {
	// CreateRun persists a run and all of its lines in one transaction.
	// Either the whole run is visible afterwards or nothing is.
	CreateRun(ctx context.Context, run WageRun) (WageRun, error)

	// GetByID retrieves a run including its lines.
	GetByID(ctx context.Context, id string) (WageRun, error)

	// List retrieves runs without lines, newest first by default.
	List(ctx context.Context, filter WageRunFilter) ([]WageRun, int64, error)

	// GetLastFinalizedEndingBefore retrieves the most recent finalized run
	// whose end date is strictly before the given date, with its lines.
	// Returns (nil, nil) when no such run exists.
	GetLastFinalizedEndingBefore(ctx context.Context, date time.Time) (*WageRun, error)

	// ListOverlapping retrieves runs whose period intersects [start, end].
	ListOverlapping(ctx context.Context, start, end time.Time) ([]WageRun, error)

	// Finalize transitions a run to finalized.
	Finalize(ctx context.Context, id string, finalizedAt time.Time) error

	// Delete removes a run and its lines.
	Delete(ctx context.Context, id string) error
}
