package utils

import "time"

// DateLayout is the storage and wire format of travel start dates.
const DateLayout = "2006-01-02"

func NowUnixSeconds() int64 { return time.Now().Unix() }

// FromUnixSeconds returns zero time if t<=0 to let callers decide how to render.
func FromUnixSeconds(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).UTC()
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// FormatDisplay mirrors the history table: "2006-01-02 15:04:05".
func FormatDisplay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02 15:04:05")
}

func ParseTravelDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func FormatTravelDate(t time.Time) string {
	return t.Format(DateLayout)
}
