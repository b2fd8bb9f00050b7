package util

import (
	"errors"
	"strings"
	"time"

	common "github.com/KanapuramVaishnavi/Core/coreServices"
)

const dateOnly = "2006-01-02"

// DayBounds returns [00:00:00.000, 23:59:59.999] of t's UTC calendar day.
func DayBounds(t time.Time) (time.Time, time.Time) {
	u := t.UTC()
	start := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Millisecond)
	return start, end
}

/*
* Accept RFC3339 timestamps first
* Fall back to the date-only layouts NormalizeDate understands
* dateOnly reports whether the input carried no time of day
 */
func ParseDateTime(raw string) (t time.Time, dateOnlyInput bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false, errors.New(INVALID_DATE)
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t.UTC(), false, nil
	}
	normalized, err := common.NormalizeDate(raw)
	if err != nil {
		return time.Time{}, false, errors.New(INVALID_DATE)
	}
	t, err = time.Parse(dateOnly, normalized)
	if err != nil {
		return time.Time{}, false, errors.New(INVALID_DATE)
	}
	return t.UTC(), true, nil
}
