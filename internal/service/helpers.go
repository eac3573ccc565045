package service

import (
	"errors"
	"reflect"
	"slices"
	"strings"

	"github.com/alexanderramin/shiftlog/internal/domain"
	"github.com/go-playground/validator/v10"
)

// newValidator reports fields by their json names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// toValidationError maps validator failures onto a domain.ValidationError.
// "required" failures become missing fields, everything else invalid.
func toValidationError(err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	out := &domain.ValidationError{}
	for _, fe := range ve {
		if fe.Tag() == "required" {
			out.Missing = append(out.Missing, fe.Field())
		} else {
			out.Invalid = append(out.Invalid, fe.Field())
		}
	}
	return out
}

// sortByDateDesc orders records newest date first, keeping insertion
// order among records of the same date.
func sortByDateDesc(records []*domain.WorkRecord) {
	slices.SortStableFunc(records, func(a, b *domain.WorkRecord) int {
		return strings.Compare(b.Date, a.Date)
	})
}

// lastN returns up to n records from the end of records, newest first.
func lastN(records []*domain.WorkRecord, n int) []*domain.WorkRecord {
	if n <= 0 || len(records) == 0 {
		return nil
	}
	start := len(records) - n
	if start < 0 {
		start = 0
	}
	out := make([]*domain.WorkRecord, 0, len(records)-start)
	for i := len(records) - 1; i >= start; i-- {
		out = append(out, records[i])
	}
	return out
}
