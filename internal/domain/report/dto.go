package report

import (
	"github.com/cmlabs-hris/agenda-stats-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/agenda-stats-go/internal/pkg/stats"
	"github.com/cmlabs-hris/agenda-stats-go/internal/pkg/validator"
)

// ========================================
// EMPLOYEE MONTHLY REPORT
// ========================================

type EmployeeMonthlyReportRequest struct {
	Employee string `json:"employee"`
	Year     int    `json:"year"`
	Month    int    `json:"month"`
}

func (r *EmployeeMonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors
	errs.Required("employee", r.Employee)
	errs.Between("month", r.Month, 1, 12)
	errs.Between("year", r.Year, 1, 9999)
	return errs.Err()
}

type EmployeeMonthlyReport struct {
	ID          string          `json:"id"`
	Employee    string          `json:"employee"`
	Year        int             `json:"year"`
	Month       int             `json:"month"`
	Title       string          `json:"title"`
	Period      calendar.Period `json:"period"`
	GeneratedAt string          `json:"generated_at"`

	DailyByWeek  []stats.WeekRow    `json:"daily_by_week"`
	Daily        []stats.DayBucket  `json:"daily"`
	WeeklyTotals []stats.WeekBucket `json:"weekly_totals"`
	MonthlyTotal float64            `json:"monthly_total"`
}

// ========================================
// GENERAL REPORT
// ========================================

// GeneralReportRequest selects a period either explicitly or through a
// preset relative to today, never both.
type GeneralReportRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Range     string `json:"range"`
}

func (r *GeneralReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Range != "" {
		if r.StartDate != "" || r.EndDate != "" {
			errs.Add("range", "range cannot be combined with start_date or end_date")
		} else if _, err := calendar.ParsePreset(r.Range); err != nil {
			errs.Add("range", "range must be one of last_week, last_month, last_30_days")
		}
		return errs.Err()
	}

	errs.DateRange("start_date", r.StartDate, "end_date", r.EndDate)
	return errs.Err()
}

// Period resolves the requested period. today is only used for presets.
func (r *GeneralReportRequest) Period(today calendar.Date) (calendar.Period, error) {
	if r.Range != "" {
		preset, err := calendar.ParsePreset(r.Range)
		if err != nil {
			return calendar.Period{}, err
		}
		return preset.Resolve(today)
	}
	return calendar.ParsePeriod(r.StartDate, r.EndDate)
}

type GeneralReport struct {
	ID             string          `json:"id"`
	Period         calendar.Period `json:"period"`
	PreviousPeriod calendar.Period `json:"previous_period"`
	GeneratedAt    string          `json:"generated_at"`

	EventCount           int                     `json:"event_count"`
	TotalAmount          float64                 `json:"total_amount"`
	AveragePricePerEvent float64                 `json:"average_price_per_event"`
	AverageEventsPerDay  float64                 `json:"average_events_per_day"`
	EventsByEmployee     stats.CategoryAggregate `json:"events_by_employee"`
	TopClients           []stats.Ranked          `json:"top_clients"`
	EventsByWeekday      [7]int                  `json:"events_by_weekday"`

	Comparison GeneralComparison `json:"comparison"`
}

// GeneralComparison holds each headline metric against the previous period.
type GeneralComparison struct {
	TotalAmount          stats.Comparison `json:"total_amount"`
	EventCount           stats.Comparison `json:"event_count"`
	AveragePricePerEvent stats.Comparison `json:"average_price_per_event"`
	AverageEventsPerDay  stats.Comparison `json:"average_events_per_day"`
}
