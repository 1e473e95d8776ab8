package wagerun

import "context"

// WageRunService defines the wage-run generation engine operations.
type WageRunService interface {
	// GenerateDraft builds and persists a draft run for the requested
	// period: hour classification per attendance record, projection of
	// not-yet-worked days, variance against the last finalized run, and
	// loan deductions.
	GenerateDraft(ctx context.Context, req GenerateWageRunRequest) (WageRunResponse, error)

	// Get retrieves a run with its lines.
	Get(ctx context.Context, id string) (WageRunResponse, error)

	// List retrieves runs without lines.
	List(ctx context.Context, filter WageRunFilter) (ListWageRunResponse, error)

	// Finalize transitions a draft to finalized. Nothing is recomputed:
	// the draft's numbers become authoritative.
	Finalize(ctx context.Context, id string) error

	// Delete removes a draft run. Finalized runs are rejected.
	Delete(ctx context.Context, id string) error
}
