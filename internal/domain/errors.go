package domain

import (
	"errors"
	"strings"
)

// ErrInvalidShift indicates a shift string other than T1 or T2.
var ErrInvalidShift = errors.New("invalid shift")

// ValidationError reports registration fields that were missing or
// malformed. It is returned before any store call is made.
type ValidationError struct {
	Missing []string
	Invalid []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "please complete all fields: missing "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid "+strings.Join(e.Invalid, ", "))
	}
	if len(parts) == 0 {
		return "invalid registration"
	}
	return strings.Join(parts, "; ")
}

// IsValidationError reports whether err wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
