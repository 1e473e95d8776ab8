package postgresql

import (
	"context"
	"fmt"

	"github.com/construxhq/ops-backend-go/internal/domain/loan"
	"github.com/construxhq/ops-backend-go/internal/pkg/database"
)

type loanRepository struct {
	db *database.DB
}

func NewLoanRepository(db *database.DB) loan.LoanRepository {
	return &loanRepository{db: db}
}

func (r *loanRepository) ListActiveWithBalance(ctx context.Context) ([]loan.EmployeeLoan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, is_active, outstanding_balance, monthly_installment,
			   start_date, created_at, updated_at
		FROM employee_loans
		WHERE is_active = true AND outstanding_balance > 0
		ORDER BY employee_id, start_date
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee loans: %w", err)
	}
	defer rows.Close()

	var loans []loan.EmployeeLoan
	for rows.Next() {
		var l loan.EmployeeLoan
		if err := rows.Scan(
			&l.ID, &l.EmployeeID, &l.IsActive, &l.OutstandingBalance, &l.MonthlyInstallment,
			&l.StartDate, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee loan: %w", err)
		}
		loans = append(loans, l)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return loans, nil
}
