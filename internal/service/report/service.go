package report

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/cmlabs-hris/agenda-stats-go/internal/domain/event"
	"github.com/cmlabs-hris/agenda-stats-go/internal/domain/report"
	"github.com/cmlabs-hris/agenda-stats-go/internal/pkg/calendar"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	eventRepo  event.EventRepository
	logger     *slog.Logger
	topClients int
	today      func() calendar.Date
}

func NewReportService(eventRepo event.EventRepository, logger *slog.Logger, topClients int) report.ReportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportServiceImpl{
		eventRepo:  eventRepo,
		logger:     logger,
		topClients: topClients,
		today:      calendar.Today,
	}
}

// GenerateEmployeeMonthlyReport generates the hour breakdown of one employee for a month
func (s *ReportServiceImpl) GenerateEmployeeMonthlyReport(ctx context.Context, req report.EmployeeMonthlyReportRequest) (report.EmployeeMonthlyReport, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return report.EmployeeMonthlyReport{}, err
	}

	period, err := calendar.MonthPeriod(req.Year, time.Month(req.Month))
	if err != nil {
		return report.EmployeeMonthlyReport{}, err
	}

	var (
		events    []event.Event
		employees []event.Employee
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		events, err = s.eventRepo.ListByEmployee(gCtx, req.Employee, period)
		if err != nil {
			return fmt.Errorf("failed to get employee events: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		employees, err = s.eventRepo.ListEmployees(gCtx)
		if err != nil {
			return fmt.Errorf("failed to get employees: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return report.EmployeeMonthlyReport{}, fmt.Errorf("%w: %w", report.ErrReportGenerationFailed, err)
	}

	// An employee missing from the list is still reported when it has events
	known := slices.ContainsFunc(employees, func(e event.Employee) bool { return e.Name == req.Employee })
	if !known && len(events) == 0 {
		return report.EmployeeMonthlyReport{}, event.ErrEmployeeNotFound
	}

	result, err := BuildEmployeeMonthlyReport(events, req.Year, time.Month(req.Month), req.Employee)
	if err != nil {
		return report.EmployeeMonthlyReport{}, err
	}
	result.ID = uuid.New().String()
	result.GeneratedAt = time.Now().Format(time.RFC3339)

	s.logger.InfoContext(ctx, "employee monthly report generated",
		slog.String("employee", req.Employee),
		slog.String("period_start", period.Start().String()),
		slog.String("period_end", period.End().String()),
		slog.Int("events", len(events)),
	)

	return result, nil
}

// GenerateGeneralReport generates the multi-metric report for a period and its comparison
// with the previous period of the same length
func (s *ReportServiceImpl) GenerateGeneralReport(ctx context.Context, req report.GeneralReportRequest) (report.GeneralReport, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return report.GeneralReport{}, err
	}

	period, err := req.Period(s.today())
	if err != nil {
		return report.GeneralReport{}, err
	}
	previousPeriod := period.Previous()

	var current, previous []event.Event

	// Both windows are independent
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		current, err = s.eventRepo.ListByPeriod(gCtx, period)
		if err != nil {
			return fmt.Errorf("failed to get events of current period: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		previous, err = s.eventRepo.ListByPeriod(gCtx, previousPeriod)
		if err != nil {
			return fmt.Errorf("failed to get events of previous period: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return report.GeneralReport{}, fmt.Errorf("%w: %w", report.ErrReportGenerationFailed, err)
	}

	events := make([]event.Event, 0, len(current)+len(previous))
	events = append(events, current...)
	events = append(events, previous...)

	result, err := BuildGeneralReport(events, period, s.topClients)
	if err != nil {
		return report.GeneralReport{}, err
	}
	result.ID = uuid.New().String()
	result.GeneratedAt = time.Now().Format(time.RFC3339)

	s.logger.InfoContext(ctx, "general report generated",
		slog.String("period_start", period.Start().String()),
		slog.String("period_end", period.End().String()),
		slog.Int("events", len(current)),
		slog.Int("previous_events", len(previous)),
	)

	return result, nil
}

// ListEmployees returns the employees that can be reported on, ordered by name
func (s *ReportServiceImpl) ListEmployees(ctx context.Context) ([]event.Employee, error) {
	employees, err := s.eventRepo.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}
	return employees, nil
}
