package attendance

import (
	"context"
	"time"
)

// AttendanceRepository reads attendance records. Records are created and
// corrected by the attendance subsystem; wage-run generation is read-only.
type AttendanceRepository interface {
	// ListBetween retrieves all records with start <= date <= end.
	ListBetween(ctx context.Context, start, end time.Time) ([]Record, error)
}
