package analytics

import (
	"time"

	"github.com/araddon/dateparse"
)

// TodayISO returns the current local calendar date as YYYY-MM-DD. Callers
// must invoke it per aggregation run, not cache it at startup, or results go
// stale across midnight.
func TodayISO() string {
	return time.Now().Format("2006-01-02")
}

// CurrentMonth returns the current local month as YYYY-MM
func CurrentMonth() string {
	return time.Now().Format("2006-01")
}

// MonthOf reduces a date string to its YYYY-MM month. Clean ISO dates are
// sliced directly (they sort and slice correctly as strings); anything else
// goes through a tolerant parse, and unparseable values yield "".
func MonthOf(date string) string {
	if len(date) >= 7 && date[4] == '-' {
		return date[:7]
	}
	t, err := dateparse.ParseAny(date)
	if err != nil {
		return ""
	}
	return t.Format("2006-01")
}

// InMonth reports whether a date string falls inside the given YYYY-MM month.
// The comparison is year-aware: a record from the same calendar month one
// year earlier does not match.
func InMonth(date, month string) bool {
	if month == "" {
		return false
	}
	return MonthOf(date) == month
}
