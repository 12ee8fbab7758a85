package jj

import "time"

// DateLayout is the only textual date format understood by the Date
// accessors: UTC with millisecond precision, e.g. 2016-06-10T00:00:00.000Z.
const DateLayout = "2006-01-02T15:04:05.000Z"

// ParseDate parses s using DateLayout.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate formats t in UTC using DateLayout.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
