package wagerun

import (
	"time"

	"github.com/construxhq/ops-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

// Status enum. Finalized is terminal: a finalized run is never edited or
// deleted, corrections flow through the variance of the next run.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusFinalized Status = "finalized"
)

// WageRun is one generated payroll draft for a pay period. RunDate is the
// as-of date separating attended days from projected days.
type WageRun struct {
	ID          string
	StartDate   time.Time
	EndDate     time.Time
	RunDate     time.Time
	PayType     string
	Status      Status
	Notes       *string
	FinalizedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Lines []WageRunLine
}

// LineFor returns the run's line for the given employee, or nil.
func (r *WageRun) LineFor(employeeID string) *WageRunLine {
	for i := range r.Lines {
		if r.Lines[i].EmployeeID == employeeID {
			return &r.Lines[i]
		}
	}
	return nil
}

// WageRunLine is the per-employee snapshot inside a run. All hour and
// money amounts are rounded to 2 decimal places when the line is built.
type WageRunLine struct {
	ID              string
	WageRunID       string
	EmployeeID      string
	EmployeeName    string
	BranchName      string
	HourlyRate      decimal.Decimal
	NormalHours     decimal.Decimal
	Overtime15Hours decimal.Decimal
	Overtime20Hours decimal.Decimal
	LunchHours      decimal.Decimal
	ProjectedHours  decimal.Decimal
	VarianceHours   decimal.Decimal
	VarianceNotes   *string
	LoanDeduction   decimal.Decimal
	TotalWage       decimal.Decimal
	CreatedAt       time.Time
}

// RateTypeForPayType maps a run's pay-type label onto the employee rate
// type it selects. Unknown labels fall back to hourly.
func RateTypeForPayType(payType string) employee.RateType {
	switch payType {
	case string(employee.RateTypeMonthlySalary), "monthly":
		return employee.RateTypeMonthlySalary
	case string(employee.RateTypeHourly):
		return employee.RateTypeHourly
	default:
		return employee.RateTypeHourly
	}
}
