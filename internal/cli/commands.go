package cli

import (
	"context"
	"time"

	"github.com/cmlabs-hris/agenda-stats-go/internal/domain/report"
	"github.com/spf13/cobra"
)

type employeeCmd struct {
	employee string
	year     int
	month    int
	open     ServiceFactory
}

func NewEmployeeCmd(open ServiceFactory) *cobra.Command {
	ec := &employeeCmd{open: open}
	cmd := &cobra.Command{
		Use:   "employee",
		Short: "Daily, weekly and monthly hours of one employee",
		RunE:  ec.run,
	}

	now := time.Now()
	cmd.Flags().StringVar(&ec.employee, "employee", "", "Employee name")
	cmd.Flags().IntVar(&ec.year, "year", now.Year(), "Calendar year")
	cmd.Flags().IntVar(&ec.month, "month", int(now.Month()), "Month number (1-12)")

	_ = cmd.MarkFlagRequired("employee")

	return cmd
}

func (ec *employeeCmd) run(cmd *cobra.Command, _ []string) error {
	return withService(cmd, ec.open, func(ctx context.Context, svc report.ReportService) (any, error) {
		return svc.GenerateEmployeeMonthlyReport(ctx, report.EmployeeMonthlyReportRequest{
			Employee: ec.employee,
			Year:     ec.year,
			Month:    ec.month,
		})
	})
}

type generalCmd struct {
	start  string
	end    string
	preset string
	open   ServiceFactory
}

func NewGeneralCmd(open ServiceFactory) *cobra.Command {
	gc := &generalCmd{open: open}
	cmd := &cobra.Command{
		Use:   "general",
		Short: "Totals, averages and rankings of a period compared with the previous one",
		RunE:  gc.run,
	}

	cmd.Flags().StringVar(&gc.start, "start", "", "First day of the period (YYYY-MM-DD)")
	cmd.Flags().StringVar(&gc.end, "end", "", "Last day of the period (YYYY-MM-DD)")
	cmd.Flags().StringVar(&gc.preset, "range", "", "Preset period: last_week, last_month or last_30_days")

	cmd.MarkFlagsMutuallyExclusive("range", "start")
	cmd.MarkFlagsMutuallyExclusive("range", "end")
	cmd.MarkFlagsOneRequired("range", "start")

	return cmd
}

func (gc *generalCmd) run(cmd *cobra.Command, _ []string) error {
	return withService(cmd, gc.open, func(ctx context.Context, svc report.ReportService) (any, error) {
		return svc.GenerateGeneralReport(ctx, report.GeneralReportRequest{
			StartDate: gc.start,
			EndDate:   gc.end,
			Range:     gc.preset,
		})
	})
}

func NewEmployeesCmd(open ServiceFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "employees",
		Short: "List the employees that can be reported on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withService(cmd, open, func(ctx context.Context, svc report.ReportService) (any, error) {
				return svc.ListEmployees(ctx)
			})
		},
	}
}
