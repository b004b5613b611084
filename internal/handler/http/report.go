package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/agenda-stats-go/internal/domain/report"
	"github.com/cmlabs-hris/agenda-stats-go/internal/handler/http/response"
)

type ReportHandler interface {
	// Employee Monthly Report
	GetEmployeeMonthlyReport(w http.ResponseWriter, r *http.Request)

	// General Report
	GetGeneralReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
	logger        *slog.Logger
}

func NewReportHandler(reportService report.ReportService, logger *slog.Logger) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
		logger:        logger,
	}
}

// GetEmployeeMonthlyReport handles GET /reports/employee-monthly
func (h *reportHandlerImpl) GetEmployeeMonthlyReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Parse query parameters
	query := r.URL.Query()

	month, err := strconv.Atoi(query.Get("month"))
	if err != nil {
		response.BadRequest(w, "invalid month parameter", nil)
		return
	}

	year, err := strconv.Atoi(query.Get("year"))
	if err != nil {
		response.BadRequest(w, "invalid year parameter", nil)
		return
	}

	req := report.EmployeeMonthlyReportRequest{
		Employee: query.Get("employee"),
		Year:     year,
		Month:    month,
	}

	result, err := h.reportService.GenerateEmployeeMonthlyReport(ctx, req)
	if err != nil {
		h.logger.ErrorContext(ctx, "employee monthly report failed", slog.Any("error", err))
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetGeneralReport handles GET /reports/general
func (h *reportHandlerImpl) GetGeneralReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := r.URL.Query()
	req := report.GeneralReportRequest{
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
		Range:     query.Get("range"),
	}

	result, err := h.reportService.GenerateGeneralReport(ctx, req)
	if err != nil {
		h.logger.ErrorContext(ctx, "general report failed", slog.Any("error", err))
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
