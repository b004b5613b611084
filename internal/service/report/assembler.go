package report

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/agenda-stats-go/internal/domain/event"
	"github.com/cmlabs-hris/agenda-stats-go/internal/domain/report"
	"github.com/cmlabs-hris/agenda-stats-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/agenda-stats-go/internal/pkg/stats"
)

// BuildEmployeeMonthlyReport breaks down the hours of one employee over a
// calendar month. Events of other employees or outside the month are ignored.
// ID and GeneratedAt are left for the caller.
func BuildEmployeeMonthlyReport(events []event.Event, year int, month time.Month, employee string) (report.EmployeeMonthlyReport, error) {
	period, err := calendar.MonthPeriod(year, month)
	if err != nil {
		return report.EmployeeMonthlyReport{}, err
	}

	selected := filterEvents(events, period, func(e event.Event) bool {
		return e.Employee == employee
	})
	points := stats.Points(selected, event.EventDate, event.EventHours)

	daily := stats.BucketByDay(points, period)

	return report.EmployeeMonthlyReport{
		Employee:     employee,
		Year:         year,
		Month:        int(month),
		Title:        calendar.MonthTitle(year, month),
		Period:       period,
		DailyByWeek:  stats.BucketDaysIntoWeeks(daily),
		Daily:        daily,
		WeeklyTotals: stats.BucketByWeek(points, period),
		MonthlyTotal: stats.Sum(selected, event.EventHours),
	}, nil
}

// BuildGeneralReport aggregates the events of period and compares the
// headline metrics with the preceding period of equal length. events may mix
// both windows; anything outside them is ignored.
func BuildGeneralReport(events []event.Event, period calendar.Period, topClients int) (report.GeneralReport, error) {
	if period.IsZero() {
		return report.GeneralReport{}, fmt.Errorf("%w: period is required", calendar.ErrInvalidPeriod)
	}
	previousPeriod := period.Previous()

	current := filterEvents(events, period, nil)
	previous := filterEvents(events, previousPeriod, nil)

	clients := stats.GroupByCategory(current, event.EventClient, event.EventAmount)
	top, err := stats.TopN(clients, topClients, stats.RankByTotal)
	if err != nil {
		return report.GeneralReport{}, err
	}

	cur := summarize(current, period)
	prev := summarize(previous, previousPeriod)

	dates := make([]calendar.Date, len(current))
	for i, e := range current {
		dates[i] = e.Date
	}

	return report.GeneralReport{
		Period:               period,
		PreviousPeriod:       previousPeriod,
		EventCount:           cur.count,
		TotalAmount:          cur.totalAmount,
		AveragePricePerEvent: cur.averagePrice,
		AverageEventsPerDay:  cur.eventsPerDay,
		EventsByEmployee:     stats.GroupByCategory(current, event.EventEmployee, event.EventAmount),
		TopClients:           top,
		EventsByWeekday:      stats.CountByWeekday(dates),
		Comparison: report.GeneralComparison{
			TotalAmount:          stats.Compare(cur.totalAmount, prev.totalAmount),
			EventCount:           stats.Compare(float64(cur.count), float64(prev.count)),
			AveragePricePerEvent: stats.Compare(cur.averagePrice, prev.averagePrice),
			AverageEventsPerDay:  stats.Compare(cur.eventsPerDay, prev.eventsPerDay),
		},
	}, nil
}

type periodSummary struct {
	count        int
	totalAmount  float64
	averagePrice float64
	eventsPerDay float64
}

func summarize(events []event.Event, period calendar.Period) periodSummary {
	count := stats.Count(events)
	return periodSummary{
		count:        count,
		totalAmount:  stats.Sum(events, event.EventAmount),
		averagePrice: stats.Average(events, event.EventAmount),
		eventsPerDay: float64(count) / float64(period.Days()),
	}
}

// filterEvents keeps the events dated inside period that also satisfy keep,
// when keep is set. Input order is preserved.
func filterEvents(events []event.Event, period calendar.Period, keep func(event.Event) bool) []event.Event {
	out := make([]event.Event, 0, len(events))
	for _, e := range events {
		if !period.Contains(e.Date) {
			continue
		}
		if keep != nil && !keep(e) {
			continue
		}
		out = append(out, e)
	}
	return out
}
