package report

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/shiftlog/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var ErrInvalidPeriod = errors.New("invalid report period")

type Kind string

const (
	KindDaily   Kind = "daily"
	KindWeekly  Kind = "weekly"
	KindMonthly Kind = "monthly"
	KindAnnual  Kind = "annual"
)

// Period is a resolved report period: its kind, the predicate selecting
// its records and the subtitle shown above the table.
type Period struct {
	Kind      Kind
	Key       string // the period as typed: 2024-03-04, 2024-W10, 2024-03, 2024
	Predicate Predicate
	Subtitle  string
}

// Title is the heading of a report of this kind.
func (k Kind) Title(lang language.Tag) string {
	es := isSpanish(lang)
	switch k {
	case KindDaily:
		return pick(es, "Reporte Diario", "Daily Report")
	case KindWeekly:
		return pick(es, "Reporte Semanal", "Weekly Report")
	case KindMonthly:
		return pick(es, "Reporte Mensual", "Monthly Report")
	case KindAnnual:
		return pick(es, "Reporte Anual", "Annual Report")
	}
	return string(k)
}

// ParsePeriod resolves a period string for the given kind. An empty key
// selects the period containing now.
func ParsePeriod(kind Kind, key string, now time.Time, lang language.Tag) (*Period, error) {
	switch kind {
	case KindDaily:
		if key == "" {
			key = domain.FormatDate(now)
		}
		d, err := domain.ParseDate(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPeriod, err)
		}
		return &Period{Kind: kind, Key: key, Predicate: Daily(key), Subtitle: FormatLongDate(d, lang)}, nil

	case KindWeekly:
		var year, week int
		if key == "" {
			year, week = CurrentWeek(now)
			key = FormatWeek(year, week)
		} else {
			var err error
			year, week, err = ParseWeek(key)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidPeriod, err)
			}
		}
		sub := fmt.Sprintf(pick(isSpanish(lang), "Semana %d de %d", "Week %d of %d"), week, year)
		return &Period{Kind: kind, Key: key, Predicate: Weekly(year, week), Subtitle: sub}, nil

	case KindMonthly:
		if key == "" {
			key = now.Format("2006-01")
		}
		t, err := time.Parse("2006-01", key)
		if err != nil {
			return nil, fmt.Errorf("%w: month %q (want YYYY-MM)", ErrInvalidPeriod, key)
		}
		return &Period{Kind: kind, Key: key, Predicate: Monthly(t.Year(), int(t.Month())), Subtitle: FormatMonth(t, lang)}, nil

	case KindAnnual:
		if key == "" {
			key = strconv.Itoa(now.Year())
		}
		year, err := strconv.Atoi(key)
		if err != nil || len(key) != 4 {
			return nil, fmt.Errorf("%w: year %q (want YYYY)", ErrInvalidPeriod, key)
		}
		sub := fmt.Sprintf(pick(isSpanish(lang), "Año %d", "Year %d"), year)
		return &Period{Kind: kind, Key: key, Predicate: Annual(year), Subtitle: sub}, nil
	}
	return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidPeriod, kind)
}

var (
	esMonths = [...]string{"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"}
	esWeekdays = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}
)

// FormatLongDate renders a date the way a long locale date reads:
// "lunes, 4 de marzo de 2024" or "Monday, March 4, 2024".
func FormatLongDate(t time.Time, lang language.Tag) string {
	if isSpanish(lang) {
		return fmt.Sprintf("%s, %d de %s de %d", esWeekdays[t.Weekday()], t.Day(), esMonths[t.Month()-1], t.Year())
	}
	return t.Format("Monday, January 2, 2006")
}

// FormatMonth renders "marzo de 2024" or "March 2024".
func FormatMonth(t time.Time, lang language.Tag) string {
	if isSpanish(lang) {
		return fmt.Sprintf("%s de %d", esMonths[t.Month()-1], t.Year())
	}
	return t.Format("January 2006")
}

// FormatShortDate renders the compact list form: "lun, 04/03/2024" or
// "Mon, 03/04/2024".
func FormatShortDate(t time.Time, lang language.Tag) string {
	if isSpanish(lang) {
		wd := []rune(esWeekdays[t.Weekday()])
		return fmt.Sprintf("%s, %02d/%02d/%d", string(wd[:3]), t.Day(), int(t.Month()), t.Year())
	}
	return t.Format("Mon, 01/02/2006")
}

// Capitalize upper-cases the first letter of s using lang's casing rules.
func Capitalize(s string, lang language.Tag) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	head := cases.Upper(lang).String(string(r[0]))
	return head + string(r[1:])
}

func isSpanish(lang language.Tag) bool {
	base, _ := lang.Base()
	return base.String() == "es"
}

func pick(es bool, spanish, english string) string {
	if es {
		return spanish
	}
	return english
}
