package task

import (
	"fmt"
	"time"
)

// Date utilities. All due-date arithmetic happens in UTC so results do not
// drift with the caller's local zone, and every returned value is a start
// of day.

// StartOfDay returns d's calendar date with the time component zeroed, in
// UTC. It is idempotent: StartOfDay(StartOfDay(d)) == StartOfDay(d).
func StartOfDay(d time.Time) time.Time {
	d = d.UTC()
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// NextDay returns the start of the day after d.
func NextDay(d time.Time) time.Time {
	return StartOfDay(d).AddDate(0, 0, 1)
}

// PlusTwoDays returns the start of the day two days after d.
func PlusTwoDays(d time.Time) time.Time {
	return StartOfDay(d).AddDate(0, 0, 2)
}

// NextMonday returns the start of the first Monday strictly after d. When d
// already falls on a Monday the result is the following Monday, seven days
// later, never the same day.
func NextMonday(d time.Time) time.Time {
	day := StartOfDay(d)
	offset := (8 - int(day.Weekday())) % 7
	if offset == 0 {
		offset = 7
	}
	return day.AddDate(0, 0, offset)
}

// dateLayouts are the accepted textual date forms, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
}

// ParseDate parses a textual date and normalizes it to start of day. An
// unparseable input fails with ErrInvalidDate; callers never receive a
// silently wrong date.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return StartOfDay(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q: %w", s, ErrInvalidDate)
}
