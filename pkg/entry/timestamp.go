package entry

import "time"

// ParseStamp parses a wire timestamp in the local zone.
func ParseStamp(v string) (time.Time, error) {
	return time.ParseInLocation(Stamp, v, time.Local)
}

// SameDay reports whether two times fall on the same local calendar day.
func SameDay(t, then time.Time) bool {
	ty, tm, td := t.Local().Date()
	ny, nm, nd := then.Local().Date()
	return ty == ny && tm == nm && td == nd
}

// StartOfDay returns midnight at the start of t's local day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// EndOfDay returns the last second of t's local day.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 23, 59, 59, 0, time.Local)
}
