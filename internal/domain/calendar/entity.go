package calendar

import "time"

type PublicHoliday struct {
	ID        string
	Name      string
	Date      time.Time // day granularity
	CreatedAt time.Time
}
