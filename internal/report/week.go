package report

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/shiftlog/internal/domain"
)

var (
	ErrInvalidWeek = errors.New("invalid week")
	// ErrNoData is returned when exporting a period without records.
	ErrNoData = errors.New("no data for period")
)

// WeekNumber returns ceil((daysSinceJan1 + jan1Weekday + 1) / 7) with
// Sunday as weekday 0. Only the calendar date of t is used.
//
// This is not ISO 8601 numbering: a week starts on Sunday for the purpose
// of the offset, 1 January is always in week 1, and late-December dates
// may land in week 53.
func WeekNumber(t time.Time) int {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	jan1 := time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
	days := int(day.Sub(jan1).Hours() / 24)
	return int(math.Ceil(float64(days+int(jan1.Weekday())+1) / 7))
}

// WeekNumberOf parses a YYYY-MM-DD date and returns its year and WeekNumber.
func WeekNumberOf(date string) (year, week int, err error) {
	t, err := domain.ParseDate(date)
	if err != nil {
		return 0, 0, err
	}
	return t.Year(), WeekNumber(t), nil
}

// ParseWeek parses "YYYY-Www" (for example "2024-W05").
func ParseWeek(s string) (year, week int, err error) {
	yStr, wStr, ok := strings.Cut(strings.ToUpper(strings.TrimSpace(s)), "-W")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q (want YYYY-Www)", ErrInvalidWeek, s)
	}
	year, err = strconv.Atoi(yStr)
	if err != nil || len(yStr) != 4 {
		return 0, 0, fmt.Errorf("%w: bad year in %q", ErrInvalidWeek, s)
	}
	week, err = strconv.Atoi(wStr)
	if err != nil || week < 1 || week > 54 {
		return 0, 0, fmt.Errorf("%w: bad week number in %q", ErrInvalidWeek, s)
	}
	return year, week, nil
}

// FormatWeek renders year and week as "YYYY-Www".
func FormatWeek(year, week int) string {
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// CurrentWeek returns the year and WeekNumber of the Monday of the week
// containing now, which is the default period of a weekly report.
func CurrentWeek(now time.Time) (year, week int) {
	wd := int(now.Weekday())
	offset := 1 - wd
	if wd == 0 {
		offset = -6
	}
	monday := now.AddDate(0, 0, offset)
	return monday.Year(), WeekNumber(monday)
}
