package report

import (
	"context"

	"github.com/cmlabs-hris/agenda-stats-go/internal/domain/event"
)

// ReportService defines the interface for report generation
type ReportService interface {
	// Generate the daily/weekly/monthly hour breakdown of one employee
	GenerateEmployeeMonthlyReport(ctx context.Context, req EmployeeMonthlyReportRequest) (EmployeeMonthlyReport, error)

	// Generate the multi-metric report of a period compared with the previous one
	GenerateGeneralReport(ctx context.Context, req GeneralReportRequest) (GeneralReport, error)

	ListEmployees(ctx context.Context) ([]event.Employee, error)
}
