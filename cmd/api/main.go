package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"solar-stats-service/internal/platform/config"
	"solar-stats-service/internal/platform/database"
	"solar-stats-service/internal/platform/logger"

	"go.uber.org/zap"

	_ "solar-stats-service/docs"
)

// @title Solar Statistics API
// @version 1.0
// @description Daily energy, savings and self-sufficiency statistics for solar sites and devices.
// @BasePath /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		// logger config is part of cfg, so fall back to a production logger
		zap.Must(zap.NewProduction()).Fatal("invalid configuration", zap.Error(err))
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		zap.Must(zap.NewProduction()).Fatal("failed to build logger", zap.Error(err))
	}
	defer func() { _ = log.Sync() }()

	// DB connection
	db, err := database.Open(cfg.DBDriver, cfg.DBDSN, database.PoolOptions{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		log.Fatal("failed to open postgres", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	if err := db.PingContext(ctx); err != nil {
		cancel()
		log.Fatal("failed to ping postgres", zap.Error(err))
	}
	if cfg.DBAutoMigrate {
		applied, err := database.Migrate(ctx, db)
		if err != nil {
			cancel()
			log.Fatal("failed to apply migrations", zap.Error(err))
		}
		log.Info("migrations applied", zap.Strings("versions", applied))
	}
	cancel()

	app := newServer(cfg, db, log)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			log.Error("fiber stopped", zap.Error(err))
		}
	}()

	log.Info("server started", zap.String("addr", cfg.HTTPAddr), zap.String("driver", cfg.DBDriver))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("fiber shutdown error", zap.Error(err))
	}

	log.Info("server exiting")
}
