package main

import (
	"database/sql"
	"net/http"

	overviewHttp "solar-stats-service/internal/overview/adapters/http/fiber"
	overviewRepoPg "solar-stats-service/internal/overview/adapters/postgres"
	overviewUsecase "solar-stats-service/internal/overview/core/usecase"

	statisticsHttp "solar-stats-service/internal/statistics/adapters/http/fiber"
	statisticsRepoPg "solar-stats-service/internal/statistics/adapters/postgres"
	statisticsUsecase "solar-stats-service/internal/statistics/core/usecase"

	"solar-stats-service/internal/platform/auth"
	"solar-stats-service/internal/platform/config"
	"solar-stats-service/internal/platform/database"
	"solar-stats-service/internal/platform/logger"
	"solar-stats-service/internal/platform/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// newServer wires repositories, use cases and handlers onto a Fiber app.
func newServer(cfg *config.Config, db *sql.DB, log *zap.Logger) *fiber.App {
	// Repositories
	telemetryRepository := statisticsRepoPg.NewTelemetryRepository(database.NewQuerier(db, "statistics"))
	overviewRepository := overviewRepoPg.NewOverviewRepository(database.NewQuerier(db, "overview"))

	// Usecases
	siteStatsUC := statisticsUsecase.NewGetSiteStatisticsUseCase(telemetryRepository)
	deviceStatsUC := statisticsUsecase.NewGetDeviceStatisticsUseCase(telemetryRepository)
	overviewUC := overviewUsecase.NewGetSystemOverviewUseCase(overviewRepository)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(requestid.New())
	app.Use(logger.RequestLogger(log.Named("http")))
	app.Use(metrics.Middleware())
	// innermost, so a recovered panic is still logged and counted
	app.Use(recover.New())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	app.Get("/readyz", func(c *fiber.Ctx) error {
		if err := db.PingContext(c.UserContext()); err != nil {
			log.Warn("readiness check failed", zap.Error(err))
			return c.SendStatus(http.StatusServiceUnavailable)
		}
		return c.SendStatus(http.StatusOK)
	})
	app.Get("/metrics", metrics.Handler())

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	api := app.Group("/api/statistics", auth.Middleware(auth.Options{
		Secret:   cfg.JWTSecret,
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
	}))

	overviewHandler := overviewHttp.NewOverviewHandler(overviewUC, log.Named("overview"))
	api.Get("/admin/overview", overviewHandler.GetOverview)

	statisticsHandler := statisticsHttp.NewStatisticsHandler(siteStatsUC, deviceStatsUC, cfg.DefaultTariff, log.Named("statistics"))
	api.Get("/device/:deviceId", statisticsHandler.GetDeviceStatistics)
	api.Get("/:siteId/daily", statisticsHandler.GetDailyStatistics)

	return app
}
