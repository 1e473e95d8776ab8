package calendar

import (
	"context"
	"time"
)

type HolidayRepository interface {
	// ListBetween retrieves holidays with start <= date <= end.
	ListBetween(ctx context.Context, start, end time.Time) ([]PublicHoliday, error)
	ListByYear(ctx context.Context, year int) ([]PublicHoliday, error)
	Create(ctx context.Context, holiday PublicHoliday) (PublicHoliday, error)
	Delete(ctx context.Context, id string) error
}
