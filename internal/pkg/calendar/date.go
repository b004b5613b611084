// Package calendar provides a timezone-naive calendar date type together with
// the week, month and period arithmetic used by the reporting layer.
package calendar

import (
	"fmt"
	"time"
)

const layout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// Date is a calendar day without time-of-day or timezone.
// It is stored as UTC midnight so that day arithmetic never drifts.
// The zero value is not a valid calendar date; use New or Parse.
type Date struct {
	t   time.Time
	set bool
}

func midnight(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), set: true}
}

// New builds a Date from validated components.
func New(year int, month time.Month, day int) (Date, error) {
	if year < 1 || year > 9999 {
		return Date{}, fmt.Errorf("%w: year %d out of range", ErrInvalidDate, year)
	}
	if month < time.January || month > time.December {
		return Date{}, fmt.Errorf("%w: month %d out of range", ErrInvalidDate, month)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d does not exist", ErrInvalidDate, year, month, day)
	}
	return midnight(year, month, day), nil
}

// MustNew is like New but panics on invalid input. Intended for constants and tests.
func MustNew(year int, month time.Month, day int) Date {
	d, err := New(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// Parse parses a "YYYY-MM-DD" string.
func Parse(s string) (Date, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q must be in YYYY-MM-DD format", ErrInvalidDate, s)
	}
	return New(t.Year(), t.Month(), t.Day())
}

// MustParse is like Parse but panics on invalid input.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime takes the calendar day of t as seen in t's own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return midnight(y, m, d)
}

// Today returns the current local calendar day.
func Today() Date {
	return FromTime(time.Now())
}

func (d Date) Year() int { return d.t.Year() }

func (d Date) Month() time.Month { return d.t.Month() }

func (d Date) Day() int { return d.t.Day() }

func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

func (d Date) YearDay() int { return d.t.YearDay() }

// IsZero reports whether d is the unset zero value.
func (d Date) IsZero() bool { return !d.set }

// Time returns d as UTC midnight, suitable for database arguments.
func (d Date) Time() time.Time { return d.t }

// AddDays returns d shifted by n calendar days.
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n), set: d.set} }

func (d Date) Before(u Date) bool { return d.t.Before(u.t) }

func (d Date) After(u Date) bool { return d.t.After(u.t) }

func (d Date) Equal(u Date) bool { return d.t.Equal(u.t) }

// Compare returns -1, 0 or +1 as d is before, equal to or after u.
func (d Date) Compare(u Date) int { return d.t.Compare(u.t) }

func (d Date) String() string { return d.t.Format(layout) }

// ordinal is the number of days since 1970-01-01.
func (d Date) ordinal() int64 { return d.t.Unix() / secondsPerDay }

// MarshalText renders d as "YYYY-MM-DD" (empty for the zero value).
func (d Date) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return []byte{}, nil
	}
	return []byte(d.String()), nil
}

// UnmarshalText accepts "YYYY-MM-DD"; an empty input leaves the zero Date.
func (d *Date) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
