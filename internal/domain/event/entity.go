package event

import "github.com/cmlabs-hris/agenda-stats-go/internal/pkg/calendar"

// Event is one booked appointment. Client and Employee are the two grouping
// categories used by the reports.
type Event struct {
	ID       string        `json:"id"`
	Date     calendar.Date `json:"date"`
	Client   string        `json:"client"`
	Employee string        `json:"employee"`
	Amount   float64       `json:"amount"`
	Hours    *float64      `json:"hours,omitempty"`
}

// HoursOrZero returns the worked hours, 0 when none were recorded.
func (e Event) HoursOrZero() float64 {
	if e.Hours == nil {
		return 0
	}
	return *e.Hours
}

func EventDate(e Event) calendar.Date { return e.Date }

func EventAmount(e Event) float64 { return e.Amount }

func EventHours(e Event) float64 { return e.HoursOrZero() }

func EventClient(e Event) string { return e.Client }

func EventEmployee(e Event) string { return e.Employee }

type Employee struct {
	Name string `json:"name"`
}
