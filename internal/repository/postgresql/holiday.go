package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/construxhq/ops-backend-go/internal/domain/calendar"
	"github.com/construxhq/ops-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) calendar.HolidayRepository {
	return &holidayRepository{db: db}
}

func (r *holidayRepository) ListBetween(ctx context.Context, start, end time.Time) ([]calendar.PublicHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, date, created_at
		FROM public_holidays
		WHERE date >= $1 AND date <= $2
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list public holidays: %w", err)
	}
	defer rows.Close()

	return scanHolidays(rows)
}

func (r *holidayRepository) ListByYear(ctx context.Context, year int) ([]calendar.PublicHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, date, created_at
		FROM public_holidays
		WHERE EXTRACT(YEAR FROM date) = $1
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list public holidays: %w", err)
	}
	defer rows.Close()

	return scanHolidays(rows)
}

func (r *holidayRepository) Create(ctx context.Context, holiday calendar.PublicHoliday) (calendar.PublicHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO public_holidays (id, name, date)
		VALUES ($1, $2, $3)
		RETURNING id, name, date, created_at
	`

	var h calendar.PublicHoliday
	err := q.QueryRow(ctx, query, holiday.ID, holiday.Name, holiday.Date).Scan(
		&h.ID, &h.Name, &h.Date, &h.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_public_holiday_date") {
			return calendar.PublicHoliday{}, calendar.ErrHolidayExists
		}
		return calendar.PublicHoliday{}, fmt.Errorf("failed to create public holiday: %w", err)
	}

	return h, nil
}

func (r *holidayRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM public_holidays WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return calendar.ErrHolidayNotFound
		}
		return fmt.Errorf("failed to delete public holiday: %w", err)
	}

	return nil
}

func scanHolidays(rows pgx.Rows) ([]calendar.PublicHoliday, error) {
	var holidays []calendar.PublicHoliday
	for rows.Next() {
		var h calendar.PublicHoliday
		if err := rows.Scan(&h.ID, &h.Name, &h.Date, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan public holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return holidays, nil
}
