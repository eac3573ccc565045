package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekNumber(t *testing.T) {
	cases := []struct {
		name string
		day  time.Time
		want int
	}{
		{"2024 starts on a Monday", date(2024, 1, 1), 1},
		{"first Saturday of 2024", date(2024, 1, 6), 1},
		{"first Sunday of 2024 opens week 2", date(2024, 1, 7), 2},
		{"mid March 2024", date(2024, 3, 4), 10},
		{"last day of leap year 2024", date(2024, 12, 31), 53},
		{"2025 new year is week 1", date(2025, 1, 1), 1},
		{"2023 ends in week 53", date(2023, 12, 31), 53},
		{"2022 starts on a Saturday", date(2022, 1, 1), 1},
		{"2 Jan 2022 is already week 2", date(2022, 1, 2), 2},
		{"2021 ends in week 53", date(2021, 12, 31), 53},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, WeekNumber(tc.day))
		})
	}
}

func TestWeekNumber_IgnoresTimeOfDayAndZone(t *testing.T) {
	late := time.Date(2024, 1, 7, 23, 59, 0, 0, time.FixedZone("UTC-5", -5*3600))
	assert.Equal(t, 2, WeekNumber(late))
}

func TestCurrentWeek(t *testing.T) {
	// Wednesday 6 March 2024: Monday is 4 March, week 10.
	y, w := CurrentWeek(time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, 2024, y)
	assert.Equal(t, 10, w)

	// Sunday belongs to the week of the preceding Monday.
	y, w = CurrentWeek(time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, 2024, y)
	assert.Equal(t, 10, w)

	// Saturday 1 January 2022 folds into the last week of 2021.
	y, w = CurrentWeek(time.Date(2022, 1, 1, 9, 0, 0, 0, time.UTC))
	assert.Equal(t, 2021, y)
	assert.Equal(t, 53, w)
}

func TestParseWeek(t *testing.T) {
	y, w, err := ParseWeek("2024-W05")
	require.NoError(t, err)
	assert.Equal(t, 2024, y)
	assert.Equal(t, 5, w)

	y, w, err = ParseWeek("2023-w53")
	require.NoError(t, err)
	assert.Equal(t, 2023, y)
	assert.Equal(t, 53, w)

	for _, bad := range []string{"2024-05", "24-W05", "2024-W00", "2024-W99", "2024-Wxx"} {
		_, _, err := ParseWeek(bad)
		assert.ErrorIs(t, err, ErrInvalidWeek, "input=%q", bad)
	}
	assert.Equal(t, "2024-W05", FormatWeek(2024, 5))
}

func TestWeekly_UsesRecordYear(t *testing.T) {
	// 31 Dec 2024 is week 53 of 2024 and never part of a 2025 report.
	y, w, err := WeekNumberOf("2024-12-31")
	require.NoError(t, err)
	assert.Equal(t, 2024, y)
	assert.Equal(t, 53, w)
}
