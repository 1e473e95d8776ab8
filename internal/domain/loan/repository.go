package loan

import "context"

// LoanRepository reads employee loans. Balances are reduced by the loan
// subsystem when a run is finalized; this core only computes deductions.
type LoanRepository interface {
	// ListActiveWithBalance retrieves active loans with a positive
	// outstanding balance.
	ListActiveWithBalance(ctx context.Context) ([]EmployeeLoan, error)
}
