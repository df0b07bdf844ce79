package domain

import (
	"errors"
	"fmt"
	"time"
)

// Frequency is the recurrence rule between consecutive treatment sessions
type Frequency string

const (
	FrequencyDaily    Frequency = "daily"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

// ErrUnknownFrequency is returned for a recurrence rule outside the supported set
var ErrUnknownFrequency = errors.New("unknown recurrence frequency")

// ParseFrequency validates and normalizes a frequency string
func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(s) {
	case FrequencyDaily, FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly:
		return Frequency(s), nil
	default:
		return "", fmt.Errorf("%w: %q (supported: daily, weekly, biweekly, monthly)", ErrUnknownFrequency, s)
	}
}

// SessionDates expands a start date and recurrence rule into n session dates.
// Daily advances by 1 day, weekly by 7, biweekly by 14. Monthly advances by
// calendar month anchored to the start's day-of-month, clamping to the last
// day of shorter months: Jan 31 -> Feb 29 -> Mar 31.
func SessionDates(start time.Time, n int, freq Frequency) ([]time.Time, error) {
	if n < 1 {
		return nil, errors.New("session count must be positive")
	}

	start = truncateToDate(start)
	dates := make([]time.Time, 0, n)

	switch freq {
	case FrequencyDaily, FrequencyWeekly, FrequencyBiweekly:
		step := map[Frequency]int{
			FrequencyDaily:    1,
			FrequencyWeekly:   7,
			FrequencyBiweekly: 14,
		}[freq]
		for i := 0; i < n; i++ {
			dates = append(dates, start.AddDate(0, 0, i*step))
		}
	case FrequencyMonthly:
		for i := 0; i < n; i++ {
			dates = append(dates, addMonthsClamped(start, i))
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFrequency, string(freq))
	}

	return dates, nil
}

// addMonthsClamped moves the date forward by the given number of calendar
// months, clamping the day-of-month to the target month's length instead of
// rolling over into the following month the way AddDate does.
func addMonthsClamped(date time.Time, months int) time.Time {
	year, month, day := date.Date()
	firstOfTarget := time.Date(year, month, 1, 0, 0, 0, 0, date.Location()).AddDate(0, months, 0)

	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, date.Location())
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
