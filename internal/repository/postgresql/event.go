package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/agenda-stats-go/internal/domain/event"
	"github.com/cmlabs-hris/agenda-stats-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/agenda-stats-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type eventRepositoryImpl struct {
	db *database.DB
}

func NewEventRepository(db *database.DB) event.EventRepository {
	return &eventRepositoryImpl{db: db}
}

const selectEvents = `
	SELECT id::text, date, client_name, employee_name, price, hours
	FROM events
`

// ListByPeriod implements event.EventRepository.
func (r *eventRepositoryImpl) ListByPeriod(ctx context.Context, period calendar.Period) ([]event.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := selectEvents + `
		WHERE date >= $1 AND date <= $2
		ORDER BY date ASC, created_at ASC
	`

	rows, err := q.Query(ctx, query, period.Start().Time(), period.End().Time())
	if err != nil {
		return nil, fmt.Errorf("failed to query events between %s and %s: %w", period.Start(), period.End(), err)
	}

	return scanEvents(rows)
}

// ListByEmployee implements event.EventRepository.
func (r *eventRepositoryImpl) ListByEmployee(ctx context.Context, employee string, period calendar.Period) ([]event.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := selectEvents + `
		WHERE employee_name = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC, created_at ASC
	`

	rows, err := q.Query(ctx, query, employee, period.Start().Time(), period.End().Time())
	if err != nil {
		return nil, fmt.Errorf("failed to query events of employee %s: %w", employee, err)
	}

	return scanEvents(rows)
}

// ListEmployees implements event.EventRepository.
func (r *eventRepositoryImpl) ListEmployees(ctx context.Context) ([]event.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT name
		FROM employees
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	employees := []event.Employee{}
	for rows.Next() {
		var e event.Employee
		if err := rows.Scan(&e.Name); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employees: %w", err)
	}

	return employees, nil
}

func scanEvents(rows pgx.Rows) ([]event.Event, error) {
	defer rows.Close()

	events := []event.Event{}
	for rows.Next() {
		var (
			e    event.Event
			date time.Time
		)
		err := rows.Scan(
			&e.ID,
			&date,
			&e.Client,
			&e.Employee,
			&e.Amount,
			&e.Hours,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		e.Date = calendar.FromTime(date)
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}
