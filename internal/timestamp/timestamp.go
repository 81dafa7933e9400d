package timestamp

import (
	"fmt"
	"strings"
	"time"
)

// Time-of-day bucket labels derived from a session's start hour.
const (
	BucketMorning   = "Morning"
	BucketAfternoon = "Afternoon"
	BucketEvening   = "Evening"
	BucketLateNight = "Late Night"
)

var layouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Parse converts a loosely-ISO timestamp string into a wall-clock time.
// A trailing 'Z' marks UTC but the wall-clock value is kept as-is; no
// timezone conversion happens. Empty input yields (nil, nil).
func Parse(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	raw = strings.TrimSuffix(raw, "Z")

	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unparsable timestamp: %q", raw)
}

// Format renders the canonical output form: no UTC marker, fractional
// seconds as six digits only when present.
func Format(t time.Time) string {
	base := t.Format("2006-01-02T15:04:05")
	if ns := t.Nanosecond(); ns != 0 {
		return base + fmt.Sprintf(".%06d", ns/1000)
	}
	return base
}

// Date renders the calendar date portion.
func Date(t time.Time) string {
	return t.Format("2006-01-02")
}

// ISOWeekday returns the ISO day of week, 1=Monday through 7=Sunday.
func ISOWeekday(t time.Time) int {
	day := int(t.Weekday())
	if day == 0 {
		return 7
	}
	return day
}

// Bucket classifies the hour of day into one of four coarse labels.
func Bucket(t time.Time) string {
	switch hour := t.Hour(); {
	case hour >= 5 && hour < 12:
		return BucketMorning
	case hour >= 12 && hour < 17:
		return BucketAfternoon
	case hour >= 17 && hour < 22:
		return BucketEvening
	default:
		return BucketLateNight
	}
}
