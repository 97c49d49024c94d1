package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveMode(t *testing.T) {
	now := time.Date(2026, 8, 15, 13, 45, 0, 0, time.UTC)

	tests := []struct {
		mode  string
		start string
		end   string
	}{
		{mode: "today", start: "2026-08-15", end: "2026-08-15"},
		{mode: "last3days", start: "2026-08-12", end: "2026-08-15"},
		{mode: "last7days", start: "2026-08-08", end: "2026-08-15"},
		{mode: "thismonth", start: "2026-08-01", end: "2026-08-15"},
		{mode: "lastmonth", start: "2026-07-01", end: "2026-07-31"},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			start, end, err := ResolveMode(tt.mode, now)

			assert.NoError(t, err)
			assert.Equal(t, tt.start, FormatDate(start))
			assert.Equal(t, tt.end, FormatDate(end))
		})
	}
}

func TestResolveMode_LastMonthAcrossYear(t *testing.T) {
	now := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

	start, end, err := ResolveMode("lastmonth", now)

	assert.NoError(t, err)
	assert.Equal(t, "2025-12-01", FormatDate(start))
	assert.Equal(t, "2025-12-31", FormatDate(end))
}

func TestResolveMode_UnknownMode(t *testing.T) {
	_, _, err := ResolveMode("yesterday", time.Now())
	assert.Error(t, err)
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	days := DaysBetween(start, end)

	assert.Len(t, days, 4)
	assert.Equal(t, "2026-08-30", FormatDate(days[0]))
	assert.Equal(t, "2026-09-02", FormatDate(days[3]))
}

func TestDaysBetween_SingleDay(t *testing.T) {
	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	days := DaysBetween(day, day)

	assert.Len(t, days, 1)
}

func TestMonthSuffix(t *testing.T) {
	assert.Equal(t, "m082026", MonthSuffix(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "m122025", MonthSuffix(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2026-08-30")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), *date)

	date, err = ParseDate("")
	assert.NoError(t, err)
	assert.True(t, date.IsZero())

	_, err = ParseDate("30/08/2026")
	assert.Error(t, err)
}
