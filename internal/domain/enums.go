package domain

import (
	"fmt"
	"strings"
	"time"
)

type Shift string

const (
	ShiftT1 Shift = "T1"
	ShiftT2 Shift = "T2"
)

// shiftBoundaryHour is the first hour of the day that belongs to T2.
const shiftBoundaryHour = 14

// ValidShifts is the canonical set of accepted shift strings.
var ValidShifts = map[string]bool{
	"T1": true, "T2": true,
}

// ParseShift accepts "T1" or "T2" in any case.
func ParseShift(s string) (Shift, error) {
	up := strings.ToUpper(strings.TrimSpace(s))
	if !ValidShifts[up] {
		return "", fmt.Errorf("%w: %q", ErrInvalidShift, s)
	}
	return Shift(up), nil
}

// ShiftForHour maps a wall-clock hour to its shift: [0,14) is T1 and
// [14,24) is T2. Hours outside 0..23 wrap around the clock, so 24 is 0
// and -1 is 23.
func ShiftForHour(hour int) Shift {
	hour = ((hour % 24) + 24) % 24
	if hour < shiftBoundaryHour {
		return ShiftT1
	}
	return ShiftT2
}

// ShiftForTime returns the shift covering t in t's own location.
func ShiftForTime(t time.Time) Shift {
	return ShiftForHour(t.Hour())
}

// Window returns the first and last minute of the shift as HH:MM.
func (s Shift) Window() (start, end string) {
	if s == ShiftT2 {
		return "14:00", "23:59"
	}
	return "00:00", "13:59"
}

func (s Shift) Valid() bool {
	return ValidShifts[string(s)]
}
