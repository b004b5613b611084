package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/agenda-stats-go/internal/domain/event"
	"github.com/cmlabs-hris/agenda-stats-go/internal/domain/report"
)

type mockReportService struct {
	mock.Mock
}

func (m *mockReportService) GenerateEmployeeMonthlyReport(ctx context.Context, req report.EmployeeMonthlyReportRequest) (report.EmployeeMonthlyReport, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(report.EmployeeMonthlyReport), args.Error(1)
}

func (m *mockReportService) GenerateGeneralReport(ctx context.Context, req report.GeneralReportRequest) (report.GeneralReport, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(report.GeneralReport), args.Error(1)
}

func (m *mockReportService) ListEmployees(ctx context.Context) ([]event.Employee, error) {
	args := m.Called(ctx)
	employees, _ := args.Get(0).([]event.Employee)
	return employees, args.Error(1)
}

func run(t *testing.T, svc report.ReportService, args ...string) (string, error) {
	t.Helper()
	closed := false
	open := func(ctx context.Context) (report.ReportService, func(), error) {
		return svc, func() { closed = true }, nil
	}

	root := NewRootCmd(open)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		assert.True(t, closed, "service should be released")
	}
	return out.String(), err
}

func TestEmployeeCommand(t *testing.T) {
	svc := new(mockReportService)
	svc.On("GenerateEmployeeMonthlyReport", mock.Anything, report.EmployeeMonthlyReportRequest{Employee: "Jean", Year: 2024, Month: 2}).
		Return(report.EmployeeMonthlyReport{Employee: "Jean", MonthlyTotal: 7}, nil)

	out, err := run(t, svc, "employee", "--employee", "Jean", "--year", "2024", "--month", "2")
	require.NoError(t, err)
	assert.Contains(t, out, `"monthly_total": 7`)
	svc.AssertExpectations(t)
}

func TestEmployeeCommandRequiresEmployee(t *testing.T) {
	_, err := run(t, new(mockReportService), "employee", "--year", "2024")
	assert.Error(t, err)
}

func TestGeneralCommand(t *testing.T) {
	svc := new(mockReportService)
	svc.On("GenerateGeneralReport", mock.Anything, report.GeneralReportRequest{Range: "last_month"}).
		Return(report.GeneralReport{EventCount: 3}, nil)

	out, err := run(t, svc, "general", "--range", "last_month")
	require.NoError(t, err)
	assert.Contains(t, out, `"event_count": 3`)
	svc.AssertExpectations(t)
}

func TestGeneralCommandFlags(t *testing.T) {
	_, err := run(t, new(mockReportService), "general")
	assert.Error(t, err)

	_, err = run(t, new(mockReportService), "general", "--range", "last_week", "--start", "2024-02-01")
	assert.Error(t, err)
}

func TestGeneralCommandServiceError(t *testing.T) {
	svc := new(mockReportService)
	boom := errors.New("boom")
	svc.On("GenerateGeneralReport", mock.Anything, mock.Anything).Return(report.GeneralReport{}, boom)

	_, err := run(t, svc, "general", "--start", "2024-02-01", "--end", "2024-02-29")
	assert.ErrorIs(t, err, boom)
}

func TestEmployeesCommand(t *testing.T) {
	svc := new(mockReportService)
	svc.On("ListEmployees", mock.Anything).Return([]event.Employee{{Name: "Jean"}, {Name: "Luc"}}, nil)

	out, err := run(t, svc, "employees")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Luc"`)
}
