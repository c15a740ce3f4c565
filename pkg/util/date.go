package util

import "time"

// ISOLayout renders timestamps the way browsers print Date.toISOString.
const ISOLayout = "2006-01-02T15:04:05.000Z"

// UnixToISO formats unix seconds as an ISO-8601 UTC string with millisecond precision.
func UnixToISO(sec int64) string {
	return time.Unix(sec, 0).UTC().Format(ISOLayout)
}

// StartOfDay returns midnight of t in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// StartOfYear returns January 1st, midnight, of t's year in loc.
func StartOfYear(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, loc)
}
