package wagerun

import (
	"time"

	"github.com/construxhq/ops-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== REQUESTS ==========

type GenerateWageRunRequest struct {
	StartDate string  `json:"start_date"` // "2006-01-02"
	EndDate   string  `json:"end_date"`
	PayType   string  `json:"pay_type"`
	Notes     *string `json:"notes,omitempty"`
}

func (r *GenerateWageRunRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Period returns the parsed period boundaries. Validate must pass first.
func (r *GenerateWageRunRequest) Period() (start, end time.Time, err error) {
	start, ok := validator.IsValidDate(r.StartDate)
	if !ok {
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}
	end, ok = validator.IsValidDate(r.EndDate)
	if !ok || end.Before(start) {
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}
	return start, end, nil
}

type WageRunFilter struct {
	Status    *string
	PayType   *string
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// ========== RESPONSES ==========

type WageRunResponse struct {
	ID          string                `json:"id"`
	StartDate   string                `json:"start_date"`
	EndDate     string                `json:"end_date"`
	RunDate     string                `json:"run_date"`
	PayType     string                `json:"pay_type"`
	Status      string                `json:"status"`
	Notes       *string               `json:"notes,omitempty"`
	FinalizedAt *string               `json:"finalized_at,omitempty"`
	Lines       []WageRunLineResponse `json:"lines,omitempty"`
}

type WageRunLineResponse struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    string          `json:"employee_name"`
	BranchName      string          `json:"branch_name"`
	HourlyRate      decimal.Decimal `json:"hourly_rate"`
	NormalHours     decimal.Decimal `json:"normal_hours"`
	Overtime15Hours decimal.Decimal `json:"overtime_15_hours"`
	Overtime20Hours decimal.Decimal `json:"overtime_20_hours"`
	LunchHours      decimal.Decimal `json:"lunch_hours"`
	ProjectedHours  decimal.Decimal `json:"projected_hours"`
	VarianceHours   decimal.Decimal `json:"variance_hours"`
	VarianceNotes   *string         `json:"variance_notes,omitempty"`
	LoanDeduction   decimal.Decimal `json:"loan_deduction"`
	TotalWage       decimal.Decimal `json:"total_wage"`
}

type ListWageRunResponse struct {
	Data       []WageRunResponse `json:"data"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}
