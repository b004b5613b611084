// Package stats buckets dated measures along the calendar and aggregates
// them by category. Every function is pure and returns freshly allocated
// results.
package stats

import (
	"strconv"

	"github.com/cmlabs-hris/agenda-stats-go/internal/pkg/calendar"
)

// Point is one dated measure.
type Point struct {
	Date  calendar.Date
	Value float64
}

// Points projects items onto dated measures.
func Points[T any](items []T, date func(T) calendar.Date, value func(T) float64) []Point {
	points := make([]Point, len(items))
	for i, item := range items {
		points[i] = Point{Date: date(item), Value: value(item)}
	}
	return points
}

type DayBucket struct {
	Date  calendar.Date `json:"date"`
	Total float64       `json:"total"`
}

// WeekBucket covers the Monday-anchored week [Start, End].
// WeekNumber is taken from the first day of the week that lies inside the
// bucketed period, so a January week opening in December keeps week 1.
type WeekBucket struct {
	WeekNumber int           `json:"week_number"`
	Start      calendar.Date `json:"start_date"`
	End        calendar.Date `json:"end_date"`
	Total      float64       `json:"total"`
}

func (w WeekBucket) Label() string { return WeekLabel(w.WeekNumber) }

// WeekLabel renders a week number as "S<n>".
func WeekLabel(n int) string { return "S" + strconv.Itoa(n) }

// BucketByDay returns one bucket per day of the period in ascending order.
// Points outside the period are ignored. The zero Period yields no bucket.
func BucketByDay(points []Point, period calendar.Period) []DayBucket {
	days := make([]DayBucket, period.Days())
	for i := range days {
		days[i].Date = period.Start().AddDays(i)
	}
	for _, p := range points {
		if !period.Contains(p.Date) {
			continue
		}
		days[calendar.InclusiveDayCount(period.Start(), p.Date)-1].Total += p.Value
	}
	return days
}

// BucketByWeek returns one bucket per Monday-anchored week overlapping the
// period, including weeks without any point. Each point is placed through the
// week start of its own date; only in-period points contribute.
func BucketByWeek(points []Point, period calendar.Period) []WeekBucket {
	if period.IsZero() {
		return []WeekBucket{}
	}
	first := calendar.WeekStart(period.Start())
	last := calendar.WeekStart(period.End())

	weeks := make([]WeekBucket, 0, calendar.InclusiveDayCount(first, last)/7+1)
	for start := first; !start.After(last); start = start.AddDays(7) {
		labelDay := start
		if labelDay.Before(period.Start()) {
			labelDay = period.Start()
		}
		weeks = append(weeks, WeekBucket{
			WeekNumber: calendar.WeekNumber(labelDay),
			Start:      start,
			End:        start.AddDays(6),
		})
	}

	for _, p := range points {
		if !period.Contains(p.Date) {
			continue
		}
		offset := calendar.InclusiveDayCount(first, calendar.WeekStart(p.Date)) - 1
		if offset < 0 {
			continue
		}
		i := offset / 7
		if i >= len(weeks) {
			continue
		}
		weeks[i].Total += p.Value
	}
	return weeks
}

// DayCell is one slot of a week row. Slots before the first or after the
// last bucketed day are out of scope and carry no bucket, which is distinct
// from an in-scope day with a zero total.
type DayCell struct {
	Bucket  *DayBucket `json:"bucket"`
	InScope bool       `json:"in_scope"`
}

// WeekRow is a Monday..Sunday row of day cells.
type WeekRow struct {
	Label      string        `json:"label"`
	WeekNumber int           `json:"week_number"`
	Start      calendar.Date `json:"start_date"`
	Days       [7]DayCell    `json:"days"`
}

// BucketDaysIntoWeeks lays ascending day buckets out as week rows.
func BucketDaysIntoWeeks(days []DayBucket) []WeekRow {
	var rows []WeekRow
	for _, day := range days {
		start := calendar.WeekStart(day.Date)
		if len(rows) == 0 || !rows[len(rows)-1].Start.Equal(start) {
			n := calendar.WeekNumber(day.Date)
			rows = append(rows, WeekRow{Label: WeekLabel(n), WeekNumber: n, Start: start})
		}
		bucket := day
		rows[len(rows)-1].Days[calendar.WeekdayIndex(day.Date)] = DayCell{Bucket: &bucket, InScope: true}
	}
	return rows
}
