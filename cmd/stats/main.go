package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cmlabs-hris/agenda-stats-go/internal/cli"
	"github.com/cmlabs-hris/agenda-stats-go/internal/config"
	"github.com/cmlabs-hris/agenda-stats-go/internal/domain/report"
	"github.com/cmlabs-hris/agenda-stats-go/internal/pkg/database"
	"github.com/cmlabs-hris/agenda-stats-go/internal/pkg/logger"
	"github.com/cmlabs-hris/agenda-stats-go/internal/repository/postgresql"
	reportService "github.com/cmlabs-hris/agenda-stats-go/internal/service/report"
)

func main() {
	if err := cli.NewRootCmd(openService).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func openService(ctx context.Context) (report.ReportService, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	// Report JSON goes to stdout, logs to stderr
	log := logger.New(os.Stderr, logger.Options{
		App:     "agenda-stats-cli",
		Version: "v1.0.0",
		Env:     cfg.App.Env,
		Level:   cfg.SlogLevel(),
	})

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{MaxConns: 2})
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	svc := reportService.NewReportService(postgresql.NewEventRepository(db), log, cfg.Report.TopClients)
	return svc, db.Close, nil
}
