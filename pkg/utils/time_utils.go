package utils

import "time"

// ISOMillis is the layout JavaScript's Date.toISOString produces.
const ISOMillis = "2006-01-02T15:04:05.000Z07:00"

func NowUnixMillis() int64 { return time.Now().UnixMilli() }

// FormatISOMillis renders t in UTC with millisecond precision,
// e.g. 2025-09-24T08:12:00.123Z.
func FormatISOMillis(t time.Time) string {
	return t.UTC().Format(ISOMillis)
}

// FromUnixMillis returns zero time if ms<=0 to let callers decide how to render.
func FromUnixMillis(ms int64) time.Time {
	if ms <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}
