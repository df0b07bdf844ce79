package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseFrequency(t *testing.T) {
	for _, valid := range []string{"daily", "weekly", "biweekly", "monthly"} {
		freq, err := ParseFrequency(valid)
		require.NoError(t, err)
		assert.Equal(t, Frequency(valid), freq)
	}

	_, err := ParseFrequency("fortnightly")
	assert.ErrorIs(t, err, ErrUnknownFrequency)
}

func TestSessionDates_Daily(t *testing.T) {
	dates, err := SessionDates(date(2026, time.March, 2), 3, FrequencyDaily)
	require.NoError(t, err)

	assert.Equal(t, []time.Time{
		date(2026, time.March, 2),
		date(2026, time.March, 3),
		date(2026, time.March, 4),
	}, dates)
}

func TestSessionDates_Weekly(t *testing.T) {
	dates, err := SessionDates(date(2026, time.March, 2), 4, FrequencyWeekly)
	require.NoError(t, err)

	require.Len(t, dates, 4)
	assert.Equal(t, date(2026, time.March, 9), dates[1])
	assert.Equal(t, date(2026, time.March, 23), dates[3])
}

func TestSessionDates_Biweekly(t *testing.T) {
	dates, err := SessionDates(date(2026, time.March, 2), 3, FrequencyBiweekly)
	require.NoError(t, err)

	assert.Equal(t, date(2026, time.March, 16), dates[1])
	assert.Equal(t, date(2026, time.March, 30), dates[2])
}

func TestSessionDates_MonthlyClampsToMonthEnd(t *testing.T) {
	// 2024 високосный: 31 января -> 29 февраля -> 31 марта
	dates, err := SessionDates(date(2024, time.January, 31), 4, FrequencyMonthly)
	require.NoError(t, err)

	assert.Equal(t, []time.Time{
		date(2024, time.January, 31),
		date(2024, time.February, 29),
		date(2024, time.March, 31),
		date(2024, time.April, 30),
	}, dates)
}

func TestSessionDates_MonthlyKeepsAnchorDay(t *testing.T) {
	dates, err := SessionDates(date(2026, time.January, 15), 3, FrequencyMonthly)
	require.NoError(t, err)

	assert.Equal(t, date(2026, time.February, 15), dates[1])
	assert.Equal(t, date(2026, time.March, 15), dates[2])
}

func TestSessionDates_InvalidCount(t *testing.T) {
	_, err := SessionDates(date(2026, time.March, 2), 0, FrequencyDaily)
	assert.Error(t, err)
}

func TestSessionDates_UnknownFrequency(t *testing.T) {
	_, err := SessionDates(date(2026, time.March, 2), 1, Frequency("hourly"))
	assert.ErrorIs(t, err, ErrUnknownFrequency)
}

func TestSessionDates_TruncatesTimeOfDay(t *testing.T) {
	start := time.Date(2026, time.March, 2, 14, 30, 45, 0, time.UTC)
	dates, err := SessionDates(start, 1, FrequencyDaily)
	require.NoError(t, err)

	assert.Equal(t, date(2026, time.March, 2), dates[0])
}
