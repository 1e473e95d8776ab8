package calendar

import "context"

// HolidayService maintains the public-holiday calendar consumed by
// wage-run generation.
type HolidayService interface {
	ListByYear(ctx context.Context, year int) ([]HolidayResponse, error)
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	Delete(ctx context.Context, id string) error
}
