package event

import (
	"context"

	"github.com/cmlabs-hris/agenda-stats-go/internal/pkg/calendar"
)

// EventRepository is the read-only source of event rows.
type EventRepository interface {
	// ListByPeriod returns every event dated inside period, ordered by date.
	ListByPeriod(ctx context.Context, period calendar.Period) ([]Event, error)
	ListByEmployee(ctx context.Context, employee string, period calendar.Period) ([]Event, error)
	ListEmployees(ctx context.Context) ([]Employee, error)
}
