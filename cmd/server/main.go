package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	logisticsapp "github.com/retailops/backend/internal/application/logistics"
	reportapp "github.com/retailops/backend/internal/application/report"
	"github.com/retailops/backend/internal/infrastructure/cache"
	"github.com/retailops/backend/internal/infrastructure/config"
	"github.com/retailops/backend/internal/infrastructure/logger"
	"github.com/retailops/backend/internal/infrastructure/persistence"
	"github.com/retailops/backend/internal/infrastructure/telemetry"
	"github.com/retailops/backend/internal/interfaces/http/handler"
	"github.com/retailops/backend/internal/interfaces/http/middleware"
	"github.com/retailops/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting logistics API",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	tp, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		ServiceName:       cfg.Telemetry.ServiceName,
		Environment:       cfg.App.Env,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		Insecure:          cfg.Telemetry.Insecure,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		_ = tp.Shutdown(context.Background())
	}()

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Database.SlowQueryThresh))

	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if err := telemetry.RegisterDBTracing(db.DB, telemetry.DBTracingConfig{
		Enabled:         cfg.Telemetry.DBTracingEnabled,
		SlowQueryThresh: cfg.Database.SlowQueryThresh,
		DBName:          cfg.Database.DBName,
	}, log); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}

	// Repositories
	salesReportRepo := persistence.NewGormSalesReportRepository(db.DB)
	presetRepo := persistence.NewGormReportPresetRepository(db.DB)
	configRepo := persistence.NewGormLogisticsConfigRepository(db.DB)
	purchaseOrderRepo := persistence.NewGormPurchaseOrderRepository(db.DB)
	inventoryRepo := persistence.NewGormInventoryRepository(db.DB)
	overrideRepo := persistence.NewGormOverrideRepository(db.DB)
	viewRepo := persistence.NewGormViewRepository(db.DB)

	facetCache, err := cache.NewFacetCacheFactory(cfg.Redis, cfg.Report, cache.WithLogger(log)).CreateCache()
	if err != nil {
		log.Fatal("Failed to create facet cache", zap.Error(err))
	}
	if closer, ok := facetCache.(interface{ Close() error }); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				log.Error("Error closing facet cache", zap.Error(err))
			}
		}()
	}

	// Application services
	salesReportService := reportapp.NewSalesReportService(salesReportRepo,
		reportapp.WithFacetCache(facetCache),
		reportapp.WithExportMaxRows(cfg.Report.ExportMaxRows),
		reportapp.WithLogger(log),
	)
	presetService := reportapp.NewPresetService(presetRepo)
	configService := logisticsapp.NewConfigService(configRepo, log)
	purchaseOrderService := logisticsapp.NewPurchaseOrderService(purchaseOrderRepo, log)
	inventoryService := logisticsapp.NewInventoryService(inventoryRepo)
	overrideService := logisticsapp.NewOverrideService(overrideRepo, log)
	viewService := logisticsapp.NewViewService(viewRepo)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	deps := router.EngineDeps{
		HTTP:        cfg.HTTP,
		ServiceName: cfg.Telemetry.ServiceName,
		Logger:      log,
		MetricsPath: cfg.Telemetry.MetricsPath,
		Health:      handler.NewHealthHandler(db),
		Handlers: router.Handlers{
			SalesReport:     handler.NewSalesReportHandler(salesReportService),
			ReportPreset:    handler.NewReportPresetHandler(presetService),
			LogisticsConfig: handler.NewLogisticsConfigHandler(configService),
			PurchaseOrder:   handler.NewPurchaseOrderHandler(purchaseOrderService),
			Inventory:       handler.NewInventoryHandler(inventoryService),
			Override:        handler.NewOverrideHandler(overrideService),
			LogisticsView:   handler.NewLogisticsViewHandler(viewService),
		},
	}

	if cfg.Telemetry.MetricsEnabled {
		metrics, err := middleware.NewHTTPMetrics("logistics")
		if err != nil {
			log.Fatal("Failed to register HTTP metrics", zap.Error(err))
		}
		deps.Metrics = metrics
	}

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		defer rateLimiter.Stop()
		deps.RateLimiter = rateLimiter
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	engine := router.NewEngine(deps)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	log.Info("Server exited gracefully")
}
