package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wallet-api/internal/config"
	"wallet-api/internal/database"
	"wallet-api/internal/handlers"
	"wallet-api/internal/middleware"
	"wallet-api/internal/repositories"
	"wallet-api/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	e := buildServer(cfg, db, logger)

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		logger.Info("starting server", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil {
			logger.Info("server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
}

func buildServer(cfg *config.Config, db *gorm.DB, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))

	// Repositories
	ledgerRepo := repositories.NewLedgerRepository(db, logger)

	// Services
	metrics := services.NewPrometheusMetrics()
	tokenService := services.NewTokenService(&cfg.Session)
	authenticator := services.NewNoDeviceAuthenticator()
	ledgerService := services.NewLedgerService(ledgerRepo, metrics, logger)
	statsService := services.NewStatsService(ledgerRepo, metrics)
	adviceService := services.NewAdviceService()
	currencyService := services.NewCurrencyService(ledgerRepo)
	relay := services.NewResendRelay(cfg.Backup.RelayURL, cfg.Backup.RelayAPIKey, logger)
	backupService := services.NewBackupService(ledgerRepo, relay, metrics, logger, cfg.Backup.FromAddress, cfg.Backup.Subject)
	lockService := services.NewLockService(
		ledgerRepo, tokenService, authenticator, metrics, logger,
		cfg.Session.LockEnabled,
		cfg.Security.BCryptCost, cfg.Security.PinMinLength, cfg.Security.PinMaxLength,
	)
	sampleDataService := services.NewSampleDataService(ledgerRepo)

	// Handlers
	transactionHandler := handlers.NewTransactionHandler(ledgerService)
	goalHandler := handlers.NewGoalHandler(ledgerService, adviceService)
	chargeHandler := handlers.NewChargeHandler(ledgerService)
	statsHandler := handlers.NewStatsHandler(statsService)
	currencyHandler := handlers.NewCurrencyHandler(currencyService)
	backupHandler := handlers.NewBackupHandler(backupService, ledgerService)
	lockHandler := handlers.NewLockHandler(lockService)
	healthHandler := handlers.NewHealthCheckHandler(db)
	devHandler := handlers.NewDevHandler(sampleDataService)

	// Public surface: health, metrics, and the unlock endpoints themselves.
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	lock := e.Group("/api/v1/lock")
	lock.GET("/status", lockHandler.GetStatus)
	lock.PUT("/pin", lockHandler.SetPin)
	lock.POST("/unlock/pin", lockHandler.UnlockWithPin)
	lock.POST("/unlock/device", lockHandler.UnlockWithDevice)

	// Everything else sits behind the unlock gate when the lock is enabled.
	api := e.Group("/api/v1", middleware.RequireUnlock(tokenService, cfg.Session.LockEnabled))

	api.GET("/transactions", transactionHandler.ListTransactions)
	api.POST("/transactions", transactionHandler.CreateTransaction)
	api.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)

	api.GET("/goals", goalHandler.ListGoals)
	api.POST("/goals", goalHandler.CreateGoal)
	api.PATCH("/goals/:id", goalHandler.UpdateGoal)
	api.DELETE("/goals/:id", goalHandler.DeleteGoal)
	api.POST("/goals/:id/contributions", goalHandler.Contribute)
	api.GET("/goals/:id/advice", goalHandler.GetAdvice)

	api.GET("/charges", chargeHandler.ListCharges)
	api.POST("/charges", chargeHandler.CreateCharge)
	api.PATCH("/charges/:id", chargeHandler.UpdateCharge)
	api.DELETE("/charges/:id", chargeHandler.DeleteCharge)

	api.GET("/stats", statsHandler.GetStats)
	api.GET("/stats/tips", statsHandler.GetTips)

	api.GET("/currencies", currencyHandler.GetCatalogue)
	api.GET("/currencies/selected", currencyHandler.GetSelected)
	api.PUT("/currencies/selected", currencyHandler.SelectCurrency)

	api.GET("/backup/export", backupHandler.Export)
	api.POST("/backup/import", backupHandler.Import)
	api.POST("/backup/email", backupHandler.Email)

	if cfg.IsDevelopment() {
		api.POST("/dev/seed", devHandler.SeedSampleData)
	}

	return e
}
