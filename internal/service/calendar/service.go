package calendar

import (
	"context"

	"github.com/construxhq/ops-backend-go/internal/domain/calendar"
	"github.com/construxhq/ops-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
)

type HolidayServiceImpl struct {
	holidayRepo calendar.HolidayRepository
}

func NewHolidayService(holidayRepo calendar.HolidayRepository) calendar.HolidayService {
	return &HolidayServiceImpl{holidayRepo: holidayRepo}
}

func (s *HolidayServiceImpl) ListByYear(ctx context.Context, year int) ([]calendar.HolidayResponse, error) {
	holidays, err := s.holidayRepo.ListByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	result := make([]calendar.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		result = append(result, mapToHolidayResponse(h))
	}
	return result, nil
}

func (s *HolidayServiceImpl) Create(ctx context.Context, req calendar.CreateHolidayRequest) (calendar.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.HolidayResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	created, err := s.holidayRepo.Create(ctx, calendar.PublicHoliday{
		ID:   uuid.NewString(),
		Name: req.Name,
		Date: date,
	})
	if err != nil {
		return calendar.HolidayResponse{}, err
	}

	return mapToHolidayResponse(created), nil
}

func (s *HolidayServiceImpl) Delete(ctx context.Context, id string) error {
	return s.holidayRepo.Delete(ctx, id)
}

func mapToHolidayResponse(h calendar.PublicHoliday) calendar.HolidayResponse {
	return calendar.HolidayResponse{
		ID:   h.ID,
		Name: h.Name,
		Date: h.Date.Format("2006-01-02"),
	}
}
