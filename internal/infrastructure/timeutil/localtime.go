package timeutil

import "time"

// LocalTimeLayout is the zoneless local-time layout the offer oracle uses for
// segment times and the shape transit legs are rendered in.
const LocalTimeLayout = "2006-01-02T15:04:05"

// DateLayout is the YYYY-MM-DD layout of trip dates.
const DateLayout = "2006-01-02"

// ParseLocal parses a zoneless local timestamp in LocalTimeLayout.
func ParseLocal(value string) (time.Time, error) {
	return time.Parse(LocalTimeLayout, value)
}

// FormatLocal renders a time in LocalTimeLayout, dropping its zone.
func FormatLocal(t time.Time) string {
	return t.Format(LocalTimeLayout)
}

// FormatDate renders a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
