// Command reconcile moves invoiced orders that were never marked "Faturada" and exits.
// It is meant to run once after upgrading from the two-step invoicing flow, or from a cron job.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"oficina_xpto/internal/adapter/persistence/repository"
	"oficina_xpto/internal/infrastructure/config"
	"oficina_xpto/internal/infrastructure/database"
	"oficina_xpto/internal/infrastructure/logger"
	"oficina_xpto/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
	"go.uber.org/multierr"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("[reconcile] failed to load config")
	}
	logger.Setup(logger.Options{
		ServiceName: cfg.App.Name + "-reconcile",
		Level:       cfg.App.LogLevel,
		Format:      cfg.App.LogFormat,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	db, err := database.NewGormDB(ctx, cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("[reconcile] database unavailable")
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	uc := usecase.NewReconciliationUseCase(
		repository.NewGormTransactor(db),
		repository.NewInvoiceGormRepository(db),
		repository.NewServiceOrderGormRepository(db),
		nil,
	)

	report, err := uc.ReconcileInvoicedOrders(ctx)
	for _, e := range multierr.Errors(err) {
		log.Error().Err(e).Msg("[reconcile] order not repaired")
	}
	log.Info().Int("scanned", report.Scanned).Int("repaired", report.Repaired).
		Strs("orders", report.RepairedOrders).Int("failed", len(multierr.Errors(err))).
		Msg("[reconcile] done")
	return err
}
