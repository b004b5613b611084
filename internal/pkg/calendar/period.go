package calendar

import (
	"encoding/json"
	"fmt"
	"time"
)

// Period is an inclusive range of calendar days. Start is never after End;
// NewPeriod and MonthPeriod are the only ways to build a non-zero Period.
type Period struct {
	start Date
	end   Date
}

// NewPeriod validates and builds a Period.
func NewPeriod(start, end Date) (Period, error) {
	if start.IsZero() || end.IsZero() {
		return Period{}, fmt.Errorf("%w: start and end are required", ErrInvalidPeriod)
	}
	if end.Before(start) {
		return Period{}, fmt.Errorf("%w: %s is before %s", ErrInvalidPeriod, end, start)
	}
	return Period{start: start, end: end}, nil
}

// ParsePeriod parses two "YYYY-MM-DD" strings into a Period.
func ParsePeriod(start, end string) (Period, error) {
	s, err := Parse(start)
	if err != nil {
		return Period{}, err
	}
	e, err := Parse(end)
	if err != nil {
		return Period{}, err
	}
	return NewPeriod(s, e)
}

// MonthPeriod returns the first through last day of the given month.
func MonthPeriod(year int, month time.Month) (Period, error) {
	if month < time.January || month > time.December {
		return Period{}, ErrInvalidMonth
	}
	start, err := New(year, month, 1)
	if err != nil {
		return Period{}, err
	}
	return Period{start: start, end: start.AddDays(DaysInMonth(year, month) - 1)}, nil
}

func (p Period) Start() Date { return p.start }

func (p Period) End() Date { return p.end }

// IsZero reports whether p is the unset zero value. The zero Period covers no day.
func (p Period) IsZero() bool { return p.start.IsZero() }

// Contains reports whether d lies inside the period, bounds included.
func (p Period) Contains(d Date) bool {
	if p.IsZero() || d.IsZero() {
		return false
	}
	return !d.Before(p.start) && !d.After(p.end)
}

// Days returns the inclusive number of days of the period.
func (p Period) Days() int {
	if p.IsZero() {
		return 0
	}
	return InclusiveDayCount(p.start, p.end)
}

// Dates lists every day of the period in ascending order.
func (p Period) Dates() []Date {
	dates := make([]Date, 0, p.Days())
	for i := 0; i < p.Days(); i++ {
		dates = append(dates, p.start.AddDays(i))
	}
	return dates
}

// Previous returns the period of identical length that ends the day before p starts.
func (p Period) Previous() Period {
	if p.IsZero() {
		return Period{}
	}
	end := p.start.AddDays(-1)
	return Period{start: end.AddDays(-(p.Days() - 1)), end: end}
}

func (p Period) String() string {
	return "[" + p.start.String() + ", " + p.end.String() + "]"
}

type periodJSON struct {
	Start Date `json:"start_date"`
	End   Date `json:"end_date"`
}

func (p Period) MarshalJSON() ([]byte, error) {
	return json.Marshal(periodJSON{Start: p.start, End: p.end})
}

// UnmarshalJSON goes through NewPeriod, so a decoded Period holds the same
// invariant as a constructed one.
func (p *Period) UnmarshalJSON(b []byte) error {
	var raw periodJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	parsed, err := NewPeriod(raw.Start, raw.End)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// PreviousPeriod is the function form of Period.Previous.
func PreviousPeriod(p Period) Period {
	return p.Previous()
}
