package helpers

import (
	"github.com/jonboulle/clockwork"
	"time"
)

// DateLayout is the wire format of every date the API returns (yyyy-MM-dd).
const DateLayout = "2006-01-02"

func NewRealClock() clockwork.Clock {
	return clockwork.NewRealClock()
}

// Today returns the clock's current calendar date as midnight UTC.
func Today(clock clockwork.Clock) time.Time {
	return ToDate(clock.Now())
}

// ToDate drops the time of day, keeping the calendar date of t in its own location.
func ToDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
