package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID               string
	BranchID         string
	FullName         string
	RateType         RateType
	HourlyRate       decimal.Decimal
	ShiftStart       *time.Time // time-of-day, date part ignored
	ShiftEnd         *time.Time
	EmploymentStatus EmploymentStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined fields
	BranchName *string
}

type RateType string

const (
	RateTypeHourly        RateType = "hourly"
	RateTypeMonthlySalary RateType = "monthly_salary"
)

type EmploymentStatus string

const (
	EmploymentStatusActive   EmploymentStatus = "active"
	EmploymentStatusInactive EmploymentStatus = "inactive"
)
