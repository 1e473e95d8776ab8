package wagerun

import (
	"time"

	"github.com/construxhq/ops-backend-go/internal/domain/employee"
)

// projectHours forecasts hours for days after the run date up to the
// period end, at the employee's standard shift length. Saturdays, Sundays
// and public holidays are skipped. Projection deliberately does not
// subtract the lunch window the way actual-hour classification does;
// payroll trues the difference up through the next run's variance.
func projectHours(emp employee.Employee, runDate, periodEnd time.Time, isHoliday holidayFn) float64 {
	length := shiftLengthHours(emp)

	var total float64
	for d := runDate.AddDate(0, 0, 1); !d.After(periodEnd); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday || isHoliday(d) {
			continue
		}
		total += length
	}
	return total
}
