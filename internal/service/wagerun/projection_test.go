package wagerun

import (
	"testing"
	"time"

	"github.com/construxhq/ops-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
)

func TestProjectHours_FiveWeekdays(t *testing.T) {
	// Run on Sunday 2025-08-10, period ends Friday 2025-08-15: Mon-Fri
	// remain, 5 days at the default 9h shift.
	runDate := day(2025, time.August, 10)
	periodEnd := day(2025, time.August, 15)

	got := projectHours(employee.Employee{}, runDate, periodEnd, noHolidays)
	assert.InDelta(t, 45.0, got, 1e-9)
}

func TestProjectHours_SkipsWeekend(t *testing.T) {
	// 2025-08-07 (Thu) through 2025-08-11 (Mon): Fri + Mon count, the
	// weekend does not.
	runDate := day(2025, time.August, 7)
	periodEnd := day(2025, time.August, 11)

	got := projectHours(employee.Employee{}, runDate, periodEnd, noHolidays)
	assert.InDelta(t, 18.0, got, 1e-9)
}

func TestProjectHours_SkipsHoliday(t *testing.T) {
	runDate := day(2025, time.August, 10)
	periodEnd := day(2025, time.August, 15)
	holiday := func(d time.Time) bool { return d.Equal(day(2025, time.August, 14)) }

	got := projectHours(employee.Employee{}, runDate, periodEnd, holiday)
	assert.InDelta(t, 36.0, got, 1e-9)
}

func TestProjectHours_EmptyWindow(t *testing.T) {
	// Run date on or after the period end projects nothing.
	end := day(2025, time.August, 15)

	assert.Zero(t, projectHours(employee.Employee{}, end, end, noHolidays))
	assert.Zero(t, projectHours(employee.Employee{}, day(2025, time.August, 20), end, noHolidays))
}

func TestProjectHours_CustomShiftLength(t *testing.T) {
	emp := employee.Employee{
		ShiftStart: at(day(2000, time.January, 1), 8, 0),
		ShiftEnd:   at(day(2000, time.January, 1), 12, 0),
	}
	runDate := day(2025, time.August, 10)
	periodEnd := day(2025, time.August, 15)

	got := projectHours(emp, runDate, periodEnd, noHolidays)
	assert.InDelta(t, 20.0, got, 1e-9)
}

func TestProjectHours_NoLunchDeduction(t *testing.T) {
	// Projection pays the full shift length even though the default shift
	// spans the lunch window; the next run's variance trues it up.
	runDate := day(2025, time.August, 11) // Monday
	periodEnd := day(2025, time.August, 12)

	got := projectHours(employee.Employee{}, runDate, periodEnd, noHolidays)
	assert.InDelta(t, 9.0, got, 1e-9)
}
