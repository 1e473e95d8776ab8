package wagerun

import (
	"time"

	"github.com/construxhq/ops-backend-go/internal/domain/attendance"
	"github.com/construxhq/ops-backend-go/internal/domain/employee"
)

// Default shift window applied when an employee has no shift configured.
const (
	defaultShiftStartHour = 7
	defaultShiftEndHour   = 16

	lunchStartHour = 12
	lunchEndHour   = 13
)

// holidayFn reports whether a date is a public holiday. The orchestrator
// preloads the holiday table for the relevant span into a set, so the
// classifier itself cannot fail.
type holidayFn func(date time.Time) bool

type dayKind int

const (
	dayWeekday dayKind = iota
	daySaturday
	// dayPremium covers Sundays and public holidays; both pay the 2.0x tier.
	dayPremium
)

// classifyDay buckets a calendar date. Sunday and public holidays are
// checked before Saturday; everything else is a weekday.
func classifyDay(date time.Time, isHoliday holidayFn) dayKind {
	if date.Weekday() == time.Sunday || isHoliday(date) {
		return dayPremium
	}
	if date.Weekday() == time.Saturday {
		return daySaturday
	}
	return dayWeekday
}

// shiftWindow resolves the employee's effective shift on the given date,
// falling back to 07:00-16:00 when either side is unset.
func shiftWindow(emp employee.Employee, date time.Time) (start, end time.Time) {
	start = timeOfDayOn(date, defaultShiftStartHour, 0)
	end = timeOfDayOn(date, defaultShiftEndHour, 0)
	if emp.ShiftStart != nil {
		start = timeOfDayOn(date, emp.ShiftStart.Hour(), emp.ShiftStart.Minute())
	}
	if emp.ShiftEnd != nil {
		end = timeOfDayOn(date, emp.ShiftEnd.Hour(), emp.ShiftEnd.Minute())
	}
	return start, end
}

// shiftLengthHours is the employee's standard shift duration, used by
// projection.
func shiftLengthHours(emp employee.Employee) float64 {
	anchor := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	start, end := shiftWindow(emp, anchor)
	return end.Sub(start).Hours()
}

func timeOfDayOn(date time.Time, hour, minute int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
}

// interval is a closed time interval [From, To].
type interval struct {
	From time.Time
	To   time.Time
}

// overlap returns the duration of the intersection with other, zero when
// the intervals are disjoint or either is inverted.
func (iv interval) overlap(other interval) time.Duration {
	start := iv.From
	if other.From.After(start) {
		start = other.From
	}
	end := iv.To
	if other.To.Before(end) {
		end = other.To
	}
	if !end.After(start) {
		return 0
	}
	return end.Sub(start)
}

// dailyHours is the pay-bucket split of one attendance record.
type dailyHours struct {
	Normal     float64
	Overtime15 float64
	Overtime20 float64
	Lunch      float64
}

func (d dailyHours) worked() float64 {
	return d.Normal + d.Overtime15 + d.Overtime20
}

// computeDailyHours classifies one record's worked duration. Records with
// no check-in, no check-out, or absent status contribute nothing; an open
// shift is reconciled by a later run, not here.
func computeDailyHours(rec attendance.Record, emp employee.Employee, isHoliday holidayFn) dailyHours {
	if rec.CheckIn == nil || rec.CheckOut == nil || rec.Status == attendance.StatusAbsent {
		return dailyHours{}
	}

	total := rec.CheckOut.Sub(*rec.CheckIn).Hours()
	if total <= 0 {
		return dailyHours{}
	}

	worked := interval{From: *rec.CheckIn, To: *rec.CheckOut}
	lunchWindow := interval{
		From: timeOfDayOn(rec.Date, lunchStartHour, 0),
		To:   timeOfDayOn(rec.Date, lunchEndHour, 0),
	}
	lunch := worked.overlap(lunchWindow).Hours()

	switch classifyDay(rec.Date, isHoliday) {
	case dayPremium:
		return dailyHours{Overtime20: nonNegative(total - lunch), Lunch: lunch}
	case daySaturday:
		return dailyHours{Overtime15: nonNegative(total - lunch), Lunch: lunch}
	default:
		shiftStart, shiftEnd := shiftWindow(emp, rec.Date)
		shift := interval{From: shiftStart, To: shiftEnd}
		inShift := worked.overlap(shift).Hours()

		// Lunch only reduces normal hours where it falls inside the
		// worked-within-shift window.
		clipped := interval{From: maxTime(worked.From, shift.From), To: minTime(worked.To, shift.To)}
		lunchInShift := clipped.overlap(lunchWindow).Hours()

		normal := nonNegative(inShift - lunchInShift)
		overtime := nonNegative(total - normal - lunch)
		return dailyHours{Normal: normal, Overtime15: overtime, Lunch: lunch}
	}
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func maxTime(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}

func minTime(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}
