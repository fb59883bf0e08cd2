package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	appshop "github.com/petshop/backend/internal/application/shop"
	"github.com/petshop/backend/internal/infrastructure/auth"
	"github.com/petshop/backend/internal/infrastructure/config"
	"github.com/petshop/backend/internal/infrastructure/logger"
	"github.com/petshop/backend/internal/infrastructure/persistence"
	"github.com/petshop/backend/internal/infrastructure/telemetry"
	"github.com/petshop/backend/internal/interfaces/http/handler"
	"github.com/petshop/backend/internal/interfaces/http/router"
	"go.uber.org/zap"

	_ "github.com/petshop/backend/docs"
)

//	@title			Petshop Backend API
//	@version		1.0
//	@description	Multi-tenant shopping basket API. Customers own baskets, baskets hold items.

//	@contact.name	API Support
//	@contact.url	https://github.com/petshop/backend

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting petshop backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.Int("port", cfg.App.Port),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	telemetryConfig := telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		ServiceName:       cfg.Telemetry.ServiceName,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		Insecure:          cfg.Telemetry.Insecure,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
	}

	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetryConfig, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	meterProvider, err := telemetry.NewMeterProvider(telemetryConfig, log)
	if err != nil {
		log.Fatal("Failed to initialize metrics", zap.Error(err))
	}
	defer func() {
		if err := meterProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down meter provider", zap.Error(err))
		}
	}()

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	basketRepo := persistence.NewGormBasketRepository(db.DB)
	itemRepo := persistence.NewGormItemRepository(db.DB)
	viewRepo := persistence.NewGormViewRepository(db.DB)

	customerService := appshop.NewCustomerService(customerRepo)
	basketService := appshop.NewBasketService(customerRepo, basketRepo)
	itemService := appshop.NewItemService(basketRepo, itemRepo)
	viewService := appshop.NewViewService(viewRepo)
	metricsService := appshop.NewMetricsService(customerRepo, basketRepo, itemRepo)

	shopMetrics, err := telemetry.NewShopMetrics(meterProvider.Meter("shop"))
	if err != nil {
		log.Fatal("Failed to initialize shop metrics", zap.Error(err))
	}

	deps := router.Dependencies{
		Config:        cfg,
		Logger:        log,
		TokenRegistry: auth.NewTokenRegistry(cfg.Security.AdminToken, cfg.Security.TenantTokens),
		MeterProvider: meterProvider,

		CustomerHandler: handler.NewCustomerHandler(customerService, shopMetrics),
		BasketHandler:   handler.NewBasketHandler(basketService, shopMetrics),
		ItemHandler:     handler.NewItemHandler(itemService, shopMetrics),
		ViewHandler:     handler.NewViewHandler(viewService),
		MetricsHandler:  handler.NewMetricsHandler(metricsService),
		SystemHandler:   handler.NewSystemHandler(db),
	}

	srv := router.NewServer(cfg, router.Setup(deps))
	srv.Addr = ":" + strconv.Itoa(cfg.App.Port)

	go func() {
		log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	stop()
	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.HTTP.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
