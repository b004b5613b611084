package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/agenda-stats-go/internal/config"
	appHTTP "github.com/cmlabs-hris/agenda-stats-go/internal/handler/http"
	"github.com/cmlabs-hris/agenda-stats-go/internal/pkg/database"
	"github.com/cmlabs-hris/agenda-stats-go/internal/pkg/logger"
	"github.com/cmlabs-hris/agenda-stats-go/internal/repository/postgresql"
	reportService "github.com/cmlabs-hris/agenda-stats-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	log := logger.New(os.Stdout, logger.Options{
		App:     "agenda-stats",
		Version: "v1.0.0",
		Env:     cfg.App.Env,
		Level:   cfg.SlogLevel(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: int32(cfg.Database.MaxConns),
	})
	if err != nil {
		log.Error("Error connecting to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	eventRepo := postgresql.NewEventRepository(db)

	reportSvc := reportService.NewReportService(eventRepo, log, cfg.Report.TopClients)

	reportHandler := appHTTP.NewReportHandler(reportSvc, log)
	employeeHandler := appHTTP.NewEmployeeHandler(reportSvc, log)

	router := appHTTP.NewRouter(log, appHTTP.RouterOptions{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		LogLevel:       cfg.SlogLevel(),
	}, reportHandler, employeeHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("Server shutdown error", slog.Any("error", err))
		}
	}()

	log.Info("Server running", slog.String("addr", "http://localhost"+server.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("Server error", slog.Any("error", err))
		os.Exit(1)
	}
}
