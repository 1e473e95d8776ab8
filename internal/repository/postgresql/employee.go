package postgresql

import (
	"context"
	"fmt"

	"github.com/construxhq/ops-backend-go/internal/domain/employee"
	"github.com/construxhq/ops-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	e.id, e.branch_id, e.full_name, e.rate_type, e.hourly_rate,
	e.shift_start, e.shift_end, e.employment_status,
	e.created_at, e.updated_at, b.name AS branch_name
`

func (r *employeeRepository) GetActiveByRateType(ctx context.Context, rateType employee.RateType) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN branches b ON e.branch_id = b.id
		WHERE e.employment_status = $1 AND e.rate_type = $2
		ORDER BY e.full_name, e.id
	`

	rows, err := q.Query(ctx, query, employee.EmploymentStatusActive, rateType)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(
			&e.ID, &e.BranchID, &e.FullName, &e.RateType, &e.HourlyRate,
			&e.ShiftStart, &e.ShiftEnd, &e.EmploymentStatus,
			&e.CreatedAt, &e.UpdatedAt, &e.BranchName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}
