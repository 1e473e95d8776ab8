package calendar

import "errors"

var (
	ErrHolidayNotFound = errors.New("public holiday not found")
	ErrHolidayExists   = errors.New("public holiday already exists for this date")
)
