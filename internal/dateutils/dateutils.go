// Package dateutils provides the ISO date helpers shared by the filter and
// analytics packages. Transaction dates are stored as yyyy-mm-dd strings,
// which sort the same lexicographically and chronologically.
package dateutils

import (
	"strings"
	"time"
)

// Date layouts
const (
	DateLayoutISO  = "2006-01-02"
	MonthLayoutISO = "2006-01"
)

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// ToISOMonth formats a time.Time value as an ISO year-month (YYYY-MM)
func ToISOMonth(date time.Time) string {
	return date.Format(MonthLayoutISO)
}

// IsToday reports whether the ISO date equals now's calendar day
func IsToday(isoDate string, now time.Time) bool {
	return isoDate == ToISODate(now)
}

// InMonth reports whether the ISO date falls in now's year-month
func InMonth(isoDate string, now time.Time) bool {
	return strings.HasPrefix(isoDate, ToISOMonth(now))
}

// DayLabel returns the two-digit day of an ISO date, or the input when it
// is too short to carry one.
func DayLabel(isoDate string) string {
	if len(isoDate) < 10 {
		return isoDate
	}
	return isoDate[8:10]
}
