package employee

import "context"

// EmployeeRepository reads employee master data. The employee subsystem
// owns writes; wage-run generation only needs lookups.
type EmployeeRepository interface {
	GetActiveByRateType(ctx context.Context, rateType RateType) ([]Employee, error)
}
