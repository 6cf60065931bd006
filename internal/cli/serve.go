package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/terraincognita07/dayledger/internal/api"
	"github.com/terraincognita07/dayledger/internal/logging"
	"github.com/terraincognita07/dayledger/internal/metrics"
	"github.com/terraincognita07/dayledger/internal/services"
)

const shutdownTimeout = 10 * time.Second

type ServeCmd struct{}

func (cmd *ServeCmd) Run(ctx *Context) error {
	cfg := ctx.Config
	logger := logging.New("dayledger", cfg.LogLevel)

	container, closeDatabase, err := ctx.openServices(logger)
	if err != nil {
		return err
	}
	defer closeDatabase()

	var recorder *metrics.Metrics
	if cfg.MetricsEnabled {
		recorder = metrics.New()
	}

	handler := api.NewHandler(container, api.HandlerOptions{
		DefaultOwner: cfg.DefaultOwner,
		AuthSecret:   cfg.AuthSecret,
		Metrics:      recorder,
	}, logger)
	server := api.NewApp(handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if cfg.OverdueSweepSpec != "" {
		scheduler := services.NewSchedulerService(cfg.Location)
		if _, err := scheduler.Schedule(cfg.OverdueSweepSpec, overdueSweepJob(sigCtx, container.Invoices, recorder, logger)); err != nil {
			return fmt.Errorf("schedule overdue sweep: %w", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	cfg.LogFields(logger.Info()).Str("addr", cfg.ListenAddress()).Msg("dayledger listening")
	if err := server.Listen(cfg.ListenAddress()); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	logger.Info().Msg("dayledger stopped")
	return nil
}

// overdueSweepJob flips sent invoices past their due date to overdue.
func overdueSweepJob(ctx context.Context, invoices *services.InvoiceService, recorder *metrics.Metrics, logger zerolog.Logger) func() {
	return func() {
		marked, err := invoices.MarkOverdue(ctx, time.Now())
		if err != nil {
			logger.Error().Err(err).Msg("overdue sweep failed")
			return
		}
		if recorder != nil {
			recorder.RecordOverdueMarked(marked)
		}
		logger.Info().Int64("marked", marked).Msg("overdue sweep finished")
	}
}
