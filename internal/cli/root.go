// Package cli exposes the reports as a command line tool.
package cli

import (
	"context"
	"encoding/json"
	"io"

	"github.com/cmlabs-hris/agenda-stats-go/internal/domain/report"
	"github.com/spf13/cobra"
)

// ServiceFactory opens the report service. The returned func releases its resources.
type ServiceFactory func(ctx context.Context) (report.ReportService, func(), error)

func NewRootCmd(open ServiceFactory) *cobra.Command {
	root := &cobra.Command{
		Use:           "stats",
		Short:         "Agenda statistics reports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		NewEmployeeCmd(open),
		NewGeneralCmd(open),
		NewEmployeesCmd(open),
	)
	return root
}

func withService(cmd *cobra.Command, open ServiceFactory, fn func(ctx context.Context, svc report.ReportService) (any, error)) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	svc, closeFn, err := open(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	result, err := fn(ctx, svc)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), result)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
