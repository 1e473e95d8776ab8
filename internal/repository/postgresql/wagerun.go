package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/construxhq/ops-backend-go/internal/domain/wagerun"
	"github.com/construxhq/ops-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type wageRunRepository struct {
	db *database.DB
}

func NewWageRunRepository(db *database.DB) wagerun.WageRunRepository {
	return &wageRunRepository{db: db}
}

const wageRunColumns = `
	id, start_date, end_date, run_date, pay_type, status, notes,
	finalized_at, created_at, updated_at
`

const wageRunLineColumns = `
	id, wage_run_id, employee_id, employee_name, branch_name, hourly_rate,
	normal_hours, overtime_15_hours, overtime_20_hours, lunch_hours,
	projected_hours, variance_hours, variance_notes, loan_deduction,
	total_wage, created_at
`

func (r *wageRunRepository) CreateRun(ctx context.Context, run wagerun.WageRun) (wagerun.WageRun, error) {
	var created wagerun.WageRun

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO wage_runs (id, start_date, end_date, run_date, pay_type, status, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING ` + wageRunColumns + `
		`
		err := tx.QueryRow(ctx, query,
			run.ID, run.StartDate, run.EndDate, run.RunDate, run.PayType, run.Status, run.Notes,
		).Scan(
			&created.ID, &created.StartDate, &created.EndDate, &created.RunDate,
			&created.PayType, &created.Status, &created.Notes,
			&created.FinalizedAt, &created.CreatedAt, &created.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert wage run: %w", err)
		}

		lineQuery := `
			INSERT INTO wage_run_lines (
				id, wage_run_id, employee_id, employee_name, branch_name, hourly_rate,
				normal_hours, overtime_15_hours, overtime_20_hours, lunch_hours,
				projected_hours, variance_hours, variance_notes, loan_deduction, total_wage
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
			RETURNING created_at
		`
		created.Lines = make([]wagerun.WageRunLine, 0, len(run.Lines))
		for _, line := range run.Lines {
			err := tx.QueryRow(ctx, lineQuery,
				line.ID, run.ID, line.EmployeeID, line.EmployeeName, line.BranchName, line.HourlyRate,
				line.NormalHours, line.Overtime15Hours, line.Overtime20Hours, line.LunchHours,
				line.ProjectedHours, line.VarianceHours, line.VarianceNotes, line.LoanDeduction,
				line.TotalWage,
			).Scan(&line.CreatedAt)
			if err != nil {
				return fmt.Errorf("failed to insert wage run line for employee %s: %w", line.EmployeeID, err)
			}
			line.WageRunID = run.ID
			created.Lines = append(created.Lines, line)
		}
		return nil
	})
	if err != nil {
		return wagerun.WageRun{}, err
	}

	return created, nil
}

func (r *wageRunRepository) GetByID(ctx context.Context, id string) (wagerun.WageRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + wageRunColumns + `
		FROM wage_runs
		WHERE id = $1
	`

	var run wagerun.WageRun
	err := q.QueryRow(ctx, query, id).Scan(
		&run.ID, &run.StartDate, &run.EndDate, &run.RunDate,
		&run.PayType, &run.Status, &run.Notes,
		&run.FinalizedAt, &run.CreatedAt, &run.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return wagerun.WageRun{}, wagerun.ErrWageRunNotFound
		}
		return wagerun.WageRun{}, fmt.Errorf("failed to get wage run: %w", err)
	}

	lines, err := r.listLines(ctx, id)
	if err != nil {
		return wagerun.WageRun{}, err
	}
	run.Lines = lines

	return run, nil
}

func (r *wageRunRepository) List(ctx context.Context, filter wagerun.WageRunFilter) ([]wagerun.WageRun, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereParts := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.Status != nil {
		whereParts = append(whereParts, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.PayType != nil {
		whereParts = append(whereParts, fmt.Sprintf("pay_type = $%d", argIdx))
		args = append(args, *filter.PayType)
		argIdx++
	}
	where := strings.Join(whereParts, " AND ")

	var totalCount int64
	countQuery := "SELECT COUNT(*) FROM wage_runs WHERE " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count wage runs: %w", err)
	}

	sortBy := "created_at"
	switch filter.SortBy {
	case "start_date", "end_date", "run_date", "created_at":
		sortBy = filter.SortBy
	}
	sortOrder := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		sortOrder = "ASC"
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM wage_runs
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, wageRunColumns, where, sortBy, sortOrder, argIdx, argIdx+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list wage runs: %w", err)
	}
	defer rows.Close()

	var runs []wagerun.WageRun
	for rows.Next() {
		var run wagerun.WageRun
		if err := rows.Scan(
			&run.ID, &run.StartDate, &run.EndDate, &run.RunDate,
			&run.PayType, &run.Status, &run.Notes,
			&run.FinalizedAt, &run.CreatedAt, &run.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan wage run: %w", err)
		}
		runs = append(runs, run)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return runs, totalCount, nil
}

func (r *wageRunRepository) GetLastFinalizedEndingBefore(ctx context.Context, date time.Time) (*wagerun.WageRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + wageRunColumns + `
		FROM wage_runs
		WHERE status = $1 AND end_date < $2
		ORDER BY end_date DESC
		LIMIT 1
	`

	var run wagerun.WageRun
	err := q.QueryRow(ctx, query, wagerun.StatusFinalized, date).Scan(
		&run.ID, &run.StartDate, &run.EndDate, &run.RunDate,
		&run.PayType, &run.Status, &run.Notes,
		&run.FinalizedAt, &run.CreatedAt, &run.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last finalized wage run: %w", err)
	}

	lines, err := r.listLines(ctx, run.ID)
	if err != nil {
		return nil, err
	}
	run.Lines = lines

	return &run, nil
}

func (r *wageRunRepository) ListOverlapping(ctx context.Context, start, end time.Time) ([]wagerun.WageRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + wageRunColumns + `
		FROM wage_runs
		WHERE start_date <= $1 AND end_date >= $2
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, end, start)
	if err != nil {
		return nil, fmt.Errorf("failed to list overlapping wage runs: %w", err)
	}
	defer rows.Close()

	var runs []wagerun.WageRun
	for rows.Next() {
		var run wagerun.WageRun
		if err := rows.Scan(
			&run.ID, &run.StartDate, &run.EndDate, &run.RunDate,
			&run.PayType, &run.Status, &run.Notes,
			&run.FinalizedAt, &run.CreatedAt, &run.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan wage run: %w", err)
		}
		runs = append(runs, run)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return runs, nil
}

func (r *wageRunRepository) Finalize(ctx context.Context, id string, finalizedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE wage_runs
		SET status = $1, finalized_at = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, wagerun.StatusFinalized, finalizedAt, id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return wagerun.ErrWageRunNotFound
		}
		return fmt.Errorf("failed to finalize wage run: %w", err)
	}

	return nil
}

func (r *wageRunRepository) Delete(ctx context.Context, id string) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM wage_run_lines WHERE wage_run_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete wage run lines: %w", err)
		}

		var deletedID string
		err := tx.QueryRow(ctx, `DELETE FROM wage_runs WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
		if err != nil {
			if err == pgx.ErrNoRows {
				return wagerun.ErrWageRunNotFound
			}
			return fmt.Errorf("failed to delete wage run: %w", err)
		}
		return nil
	})
}

func (r *wageRunRepository) listLines(ctx context.Context, runID string) ([]wagerun.WageRunLine, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + wageRunLineColumns + `
		FROM wage_run_lines
		WHERE wage_run_id = $1
		ORDER BY employee_name, employee_id
	`

	rows, err := q.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wage run lines: %w", err)
	}
	defer rows.Close()

	var lines []wagerun.WageRunLine
	for rows.Next() {
		var line wagerun.WageRunLine
		if err := rows.Scan(
			&line.ID, &line.WageRunID, &line.EmployeeID, &line.EmployeeName, &line.BranchName,
			&line.HourlyRate, &line.NormalHours, &line.Overtime15Hours, &line.Overtime20Hours,
			&line.LunchHours, &line.ProjectedHours, &line.VarianceHours, &line.VarianceNotes,
			&line.LoanDeduction, &line.TotalWage, &line.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan wage run line: %w", err)
		}
		lines = append(lines, line)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
