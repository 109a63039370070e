// Package app provides router configuration.
package app

import (
	"github.com/glotta/translate-service/config"
	"github.com/glotta/translate-service/internal/http"
	"github.com/glotta/translate-service/internal/middleware"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter builds the router configuration and the health handler.
func InitializeRouter(
	serviceComponents *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	healthHandler := http.NewHealthHandler()
	if dbComponents != nil {
		healthHandler.RegisterChecker("database", dbComponents.DB)
	}
	healthHandler.RegisterBreakerReporter(serviceComponents.Speaker)

	idempotency := middleware.DefaultIdempotencyConfig()
	if cfg.Cache.ResponseSize > 0 {
		idempotency.Capacity = cfg.Cache.ResponseSize
	}
	if cfg.Cache.ResponseTTL > 0 {
		idempotency.TTL = cfg.Cache.ResponseTTL
	}

	routerCfg := http.DefaultRouterConfig()
	routerCfg.RateLimit = cfg.Server.RateLimit
	routerCfg.RateWindow = cfg.Server.RateWindow
	routerCfg.CORSOrigins = cfg.Server.CORSOrigins
	routerCfg.AuthEnabled = cfg.Auth.Enabled
	routerCfg.JWTSecretKey = cfg.Auth.JWTSecretKey
	routerCfg.Idempotency = idempotency
	routerCfg.Translator = serviceComponents.Translator
	routerCfg.Speaker = serviceComponents.Speaker

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
