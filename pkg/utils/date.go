package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(DateLayout, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}

// ResolveMode translates a run mode into an inclusive [start, end] range.
// Supported modes: today, last3days, last7days, thismonth, lastmonth.
func ResolveMode(mode string, now time.Time) (time.Time, time.Time, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch mode {
	case "today":
		return today, today, nil
	case "last3days":
		return today.AddDate(0, 0, -3), today, nil
	case "last7days":
		return today.AddDate(0, 0, -7), today, nil
	case "thismonth":
		firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return firstOfMonth, today, nil
	case "lastmonth":
		firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		firstOfLastMonth := firstOfMonth.AddDate(0, -1, 0)
		lastOfLastMonth := firstOfMonth.AddDate(0, 0, -1)
		return firstOfLastMonth, lastOfLastMonth, nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("utils: unknown mode %q", mode)
	}
}

// DaysBetween lists every calendar day of the inclusive [start, end] range.
func DaysBetween(start, end time.Time) []time.Time {
	var days []time.Time
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}
	return days
}

// MonthSuffix names the monthly raw table partition of a date, mMMYYYY.
func MonthSuffix(date time.Time) string {
	return fmt.Sprintf("m%02d%d", int(date.Month()), date.Year())
}
