package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayBounds(t *testing.T) {
	at := time.Date(2024, 1, 11, 15, 30, 0, 0, time.UTC)
	start, end := DayBounds(at)
	assert.Equal(t, time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 1, 11, 23, 59, 59, int(999*time.Millisecond), time.UTC), end)
}

func TestDayBoundsUsesUTCCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	at := time.Date(2024, 1, 12, 2, 0, 0, 0, loc) // 2024-01-11T21:00Z
	start, _ := DayBounds(at)
	assert.Equal(t, 11, start.Day())
}

func TestParseDateTime(t *testing.T) {
	got, dateOnly, err := ParseDateTime("2024-01-10T09:30:00Z")
	require.NoError(t, err)
	assert.False(t, dateOnly)
	assert.Equal(t, time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC), got)

	got, dateOnly, err = ParseDateTime("2024-01-10")
	require.NoError(t, err)
	assert.True(t, dateOnly)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), got)

	got, _, err = ParseDateTime("10-01-2024")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), got)

	_, _, err = ParseDateTime("tomorrow")
	assert.Error(t, err)
	_, _, err = ParseDateTime("  ")
	assert.Error(t, err)
}
