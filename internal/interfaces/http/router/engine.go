package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/retailops/backend/internal/infrastructure/config"
	"github.com/retailops/backend/internal/infrastructure/logger"
	"github.com/retailops/backend/internal/interfaces/http/handler"
	"github.com/retailops/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// EngineDeps are the collaborators the HTTP engine is assembled from.
// Metrics and RateLimiter are optional.
type EngineDeps struct {
	HTTP        config.HTTPConfig
	ServiceName string
	Logger      *zap.Logger
	Metrics     *middleware.HTTPMetrics
	MetricsPath string
	RateLimiter *middleware.RateLimiter
	Health      *handler.HealthHandler
	Handlers    Handlers
}

// NewEngine builds the gin engine with the middleware stack in order:
//  1. Recovery
//  2. RequestID
//  3. request logger
//  4. tracing (span, request id attribute, error status)
//  5. metrics
//  6. CORS and security headers
//  7. body limit and rate limit
func NewEngine(deps EngineDeps) *gin.Engine {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	engine := gin.New()
	if len(deps.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(deps.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(logger.Recovery(log))
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))

	tracingCfg := middleware.DefaultTracingConfig()
	if deps.ServiceName != "" {
		tracingCfg.ServiceName = deps.ServiceName
	}
	engine.Use(middleware.TracingWithConfig(tracingCfg))
	engine.Use(middleware.TracingAttributeInjector())
	engine.Use(middleware.SpanErrorMarker())

	if deps.Metrics != nil {
		engine.Use(deps.Metrics.Middleware())
	}

	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     deps.HTTP.CORSAllowOrigins,
		AllowMethods:     deps.HTTP.CORSAllowMethods,
		AllowHeaders:     deps.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.Secure())

	if deps.HTTP.MaxBodySize > 0 {
		engine.Use(middleware.BodyLimit(deps.HTTP.MaxBodySize))
	}
	if deps.RateLimiter != nil {
		engine.Use(middleware.RateLimit(deps.RateLimiter))
	}

	if deps.Health != nil {
		engine.GET("/health", deps.Health.Health)
	}
	if deps.Metrics != nil {
		path := deps.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		engine.GET(path, gin.WrapH(deps.Metrics.Handler()))
	}

	r := NewRouter(engine, WithAPIVersion("v1"))
	r.Register(SalesRoutes(deps.Handlers)).
		Register(LogisticsRoutes(deps.Handlers))
	r.Setup()

	return engine
}
