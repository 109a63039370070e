package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/glotta/translate-service/internal/metrics"
	"github.com/glotta/translate-service/internal/middleware"
	"github.com/glotta/translate-service/internal/service"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	CORSOrigins    []string
	AuthEnabled    bool
	JWTSecretKey   string
	Idempotency    middleware.IdempotencyConfig
	Translator     service.Translator
	Speaker        service.Speaker
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:      100,
		RateWindow:     time.Minute,
		RequestTimeout: 60 * time.Second,
		Idempotency:    middleware.DefaultIdempotencyConfig(),
	}
}

// NewRouter creates and configures the Gin router for the translate service.
func NewRouter(healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler)

	api := router.Group("/api")
	configureAPIMiddleware(api, &cfg)
	registerAPIRoutes(api, &cfg)

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	router.Use(middleware.CORS(cfg.CORSOrigins))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(),
		middleware.ErrorHandler(),
	)

	if cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(cfg.RequestTimeout))
	}
}

// registerInfrastructureRoutes registers health and metrics routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler) {
	healthHandler.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// configureAPIMiddleware sets up middleware for the API group.
func configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	// JWT is always parsed when a secret is configured so per-user
	// credentials resolve; AuthEnabled decides whether a token is
	// mandatory.
	if cfg.JWTSecretKey != "" {
		api.Use(middleware.JWTAuth(cfg.JWTSecretKey, cfg.AuthEnabled))
	}

	// After auth, so authenticated callers are limited per user rather
	// than per IP.
	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		api.Use(limiter.RateLimit())
	}

	if cfg.Idempotency.Enabled {
		api.Use(middleware.Idempotency(cfg.Idempotency))
	}
}

// registerAPIRoutes registers the translation and speech routes.
func registerAPIRoutes(api *gin.RouterGroup, cfg *RouterConfig) {
	handler := NewHandler(cfg.Translator, cfg.Speaker)

	api.POST("/translate", handler.Translate)
	api.POST("/translate/batch", handler.TranslateBatch)
	api.POST("/speak", handler.Speak)
	api.GET("/languages", handler.Languages)
}
