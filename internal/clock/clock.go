package clock

import "time"

// Date/time helpers shared by the whole app. A "day key" is the canonical
// YYYY-MM-DD string for a calendar day in local time.

const dayKeyLayout = "2006-01-02"

// DayKey returns the canonical day key for t.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// ParseDayKey parses a YYYY-MM-DD key back into a local-time date.
func ParseDayKey(key string) (time.Time, error) {
	return time.ParseInLocation(dayKeyLayout, key, time.Local)
}

// ParseISO parses an RFC 3339 timestamp.
func ParseISO(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// ISO returns t as an RFC 3339 timestamp.
func ISO(t time.Time) string {
	return t.Format(time.RFC3339)
}

// DiffHours returns the difference between two unix-millisecond timestamps
// in hours.
func DiffHours(fromMillis, toMillis int64) float64 {
	return float64(toMillis-fromMillis) / (1000 * 60 * 60)
}
