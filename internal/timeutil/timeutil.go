package timeutil

import (
	"time"
)

// Location is the business timezone used for all date comparisons. Defaults
// to the server's local zone; SetLocation lets boot code override it from
// config.
var Location = time.Local

// SetLocation overrides the business timezone by IANA name. Unknown names
// keep the current location.
func SetLocation(name string) {
	if name == "" {
		return
	}
	if loc, err := time.LoadLocation(name); err == nil {
		Location = loc
	}
}

// Now returns the current time in the business timezone.
func Now() time.Time {
	return time.Now().In(Location)
}

// StartOfDay returns midnight of the given time in the business timezone.
// All occupancy and due-date comparisons run on midnight-normalized dates.
func StartOfDay(t time.Time) time.Time {
	lt := t.In(Location)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, Location)
}

// Today returns midnight of the current day.
func Today() time.Time {
	return StartOfDay(Now())
}

// ParseDate parses an ISO calendar date in the business timezone.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, Location)
}

// Common layouts
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
	DisplayLayout  = "02 Jan 2006"
)
