package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

type EmployeeLoan struct {
	ID                 string
	EmployeeID         string
	IsActive           bool
	OutstandingBalance decimal.Decimal
	MonthlyInstallment decimal.Decimal
	StartDate          time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
