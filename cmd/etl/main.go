package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/fleximart/retail-etl/internal/config"
	"github.com/fleximart/retail-etl/internal/db"
	"github.com/fleximart/retail-etl/internal/logger"
	"github.com/fleximart/retail-etl/internal/pipeline"
	"github.com/fleximart/retail-etl/internal/repository"

	"github.com/google/uuid"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load(".")
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		return err
	}

	logg, err := logger.New(cfg.LogLevel, cfg.LogPath)
	if err != nil {
		log.Printf("Failed to set up logging: %v", err)
		return err
	}
	defer logg.Close()

	runLog := logg.With("run_id", uuid.NewString())
	runLog.Info("starting etl run", "raw_dir", cfg.RawDir, "report_path", cfg.ReportPath)

	conn, err := db.NewConnection(ctx, cfg.DB)
	if err != nil {
		runLog.Error("failed to connect to database", "error", err)
		return err
	}
	defer conn.Close()

	if err := db.RunMigrations(cfg.DB.URL(), cfg.MigrationsDir); err != nil {
		runLog.Error("failed to run migrations", "error", err)
		return err
	}

	svc := pipeline.New(
		repository.NewCustomerRepository(conn),
		repository.NewProductRepository(conn),
		repository.NewOrderRepository(conn),
		runLog,
		cfg.RawDir,
		cfg.ReportPath,
	)

	if err := svc.Run(ctx); err != nil {
		// Run already logged the failure and flushed the report.
		return fmt.Errorf("etl run failed: %w", err)
	}

	return nil
}
