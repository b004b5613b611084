package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/agenda-stats-go/internal/domain/report"
	"github.com/cmlabs-hris/agenda-stats-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	reportService report.ReportService
	logger        *slog.Logger
}

func NewEmployeeHandler(reportService report.ReportService, logger *slog.Logger) EmployeeHandler {
	return &employeeHandlerImpl{
		reportService: reportService,
		logger:        logger,
	}
}

// List handles GET /employees
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	employees, err := h.reportService.ListEmployees(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list employees failed", slog.Any("error", err))
		response.HandleError(w, err)
		return
	}

	response.List(w, employees)
}
