// Package router assembles the gin engine, middleware chain, and routes.
package router

import (
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/petshop/backend/internal/infrastructure/auth"
	"github.com/petshop/backend/internal/infrastructure/config"
	"github.com/petshop/backend/internal/infrastructure/logger"
	"github.com/petshop/backend/internal/infrastructure/telemetry"
	"github.com/petshop/backend/internal/interfaces/http/handler"
	"github.com/petshop/backend/internal/interfaces/http/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Dependencies carries everything the router needs, wired in main
type Dependencies struct {
	Config        *config.Config
	Logger        *zap.Logger
	TokenRegistry *auth.TokenRegistry
	MeterProvider *telemetry.MeterProvider

	CustomerHandler *handler.CustomerHandler
	BasketHandler   *handler.BasketHandler
	ItemHandler     *handler.ItemHandler
	ViewHandler     *handler.ViewHandler
	MetricsHandler  *handler.MetricsHandler
	SystemHandler   *handler.SystemHandler
}

// Setup builds the fully configured gin engine
func Setup(deps Dependencies) *gin.Engine {
	cfg := deps.Config

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	registerValidators()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(cfg.HTTP.TrustedProxies)
	}

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins

	engine.Use(
		middleware.RequestID(),
		logger.Recovery(deps.Logger),
		logger.GinMiddleware(deps.Logger),
		middleware.Secure(),
		middleware.CORSWithConfig(corsConfig),
		middleware.BodyLimit(cfg.HTTP.MaxBodyBytes),
		middleware.RateLimit(middleware.NewRateLimiter(cfg.HTTP.RateLimitRPS, time.Second)),
		middleware.Tracing(cfg.Telemetry.ServiceName, cfg.Telemetry.Enabled),
		middleware.SpanErrorMarker(),
		middleware.HTTPMetrics(deps.MeterProvider.Meter("http.server"), deps.MeterProvider.IsEnabled()),
		middleware.TokenAuth(deps.TokenRegistry),
	)

	registerSystemRoutes(engine, deps)
	registerShopRoutes(engine, deps)

	return engine
}

func registerSystemRoutes(engine *gin.Engine, deps Dependencies) {
	engine.GET("/health", deps.SystemHandler.Health)
	engine.GET("/v1/system-metrics", gin.WrapH(deps.MeterProvider.Handler()))
	// Stays behind the token gate on purpose: the counters are scoped to
	// the calling token.
	engine.GET("/v1/metrics", deps.MetricsHandler.Metrics)
	engine.GET("/swagger/*any",
		middleware.SwaggerGate(deps.Config.Swagger.Enabled),
		ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func registerShopRoutes(engine *gin.Engine, deps Dependencies) {
	api := engine.Group("/api/v1")

	customers := api.Group("/customers")
	{
		customers.POST("", deps.CustomerHandler.Create)
		customers.GET("", deps.CustomerHandler.List)
		customers.GET("/stream", deps.CustomerHandler.Stream)
		customers.PATCH("/batch", deps.CustomerHandler.BatchUpdate)
		customers.GET("/:customerId", deps.CustomerHandler.GetByID)
		customers.PUT("/:customerId", deps.CustomerHandler.Update)
		customers.PATCH("/:customerId", deps.CustomerHandler.Patch)
		customers.DELETE("/:customerId", deps.CustomerHandler.Delete)
		customers.HEAD("/:customerId", deps.CustomerHandler.Exists)
	}

	baskets := api.Group("/customers/:customerId/baskets")
	{
		baskets.POST("", deps.BasketHandler.Create)
		baskets.GET("", deps.BasketHandler.List)
		baskets.GET("/stream", deps.BasketHandler.Stream)
		baskets.PATCH("/batch", deps.BasketHandler.BatchUpdate)
		baskets.GET("/:basketId", deps.BasketHandler.GetByID)
		baskets.PATCH("/:basketId", deps.BasketHandler.Patch)
		baskets.DELETE("/:basketId", deps.BasketHandler.Delete)
		baskets.HEAD("/:basketId", deps.BasketHandler.Exists)
	}

	view := api.Group("/view/customer-basket-items")
	{
		view.GET("", deps.ViewHandler.List)
		view.GET("/paginated", deps.ViewHandler.ListPaginated)
		view.GET("/by-customer-name/:customerName", deps.ViewHandler.ListByCustomerName)
	}

	items := api.Group("/customers/:customerId/baskets/:basketId/items")
	{
		items.POST("", deps.ItemHandler.Create)
		items.GET("", deps.ItemHandler.List)
		items.GET("/stream", deps.ItemHandler.Stream)
		items.PATCH("/batch", deps.ItemHandler.BatchUpdate)
		items.GET("/:itemId", deps.ItemHandler.GetByID)
		items.PUT("/:itemId", deps.ItemHandler.Update)
		items.PATCH("/:itemId", deps.ItemHandler.Patch)
		items.DELETE("/:itemId", deps.ItemHandler.Delete)
		items.HEAD("/:itemId", deps.ItemHandler.Exists)
	}
}

// registerValidators installs custom binding validators. The iana_tz rule
// accepts any zone name the host's tz database resolves. Validation errors
// report fields by their JSON names.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("iana_tz", func(fl validator.FieldLevel) bool {
		name := fl.Field().String()
		if name == "" || name == "Local" {
			return false
		}
		_, err := time.LoadLocation(name)
		return err == nil
	})
}

// NewServer wraps the engine in an http.Server with the configured timeouts
func NewServer(cfg *config.Config, engine *gin.Engine) *http.Server {
	return &http.Server{
		Handler:      engine,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.HTTP.IdleTimeout) * time.Second,
	}
}
