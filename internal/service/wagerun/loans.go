package wagerun

import (
	"time"

	"github.com/construxhq/ops-backend-go/internal/domain/loan"
	"github.com/shopspring/decimal"
)

// loanDeduction sums the monthly installments of the employee's active
// loans that had started by the run date. Each installment is capped at
// the loan's outstanding balance so a loan can never go negative. Balance
// reduction itself happens in the loan subsystem on finalization.
func loanDeduction(loans []loan.EmployeeLoan, runDate time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, l := range loans {
		if !l.IsActive || l.StartDate.After(runDate) {
			continue
		}
		installment := l.MonthlyInstallment
		if installment.GreaterThan(l.OutstandingBalance) {
			installment = l.OutstandingBalance
		}
		total = total.Add(installment)
	}
	return total
}
