package util

import "time"

// secondsPerDay is the seconds in a civil day; closes are keyed by pure
// calendar dates, so every date maps onto a whole multiple of it.
const secondsPerDay = 24 * 60 * 60

// Midnight truncates t to its calendar date at 00:00:00 UTC.
func Midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateOrdinal maps a calendar date to a contiguous day count
// (days since 1970-01-01). Monotonic and reversible via OrdinalDate;
// negative-safe for pre-epoch dates.
func DateOrdinal(t time.Time) int {
	sec := Midnight(t).Unix()
	if sec >= 0 {
		return int(sec / secondsPerDay)
	}
	// floor division for negative unix times
	return int((sec - secondsPerDay + 1) / secondsPerDay)
}

// OrdinalDate is the inverse of DateOrdinal.
func OrdinalDate(n int) time.Time {
	return time.Unix(int64(n)*secondsPerDay, 0).UTC()
}

// ParseDate parses a provider date string in YYYY-MM-DD form, optionally
// followed by a time component which is discarded.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if len(s) > 10 {
		s = s[:10]
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
