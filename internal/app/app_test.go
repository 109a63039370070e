package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glotta/translate-service/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testAppConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{
			Port:       "8080",
			RateLimit:  100,
			RateWindow: time.Minute,
		},
		Cache: config.CacheConfig{
			TranslationSize: 100,
			TranslationTTL:  time.Minute,
			SpeechSize:      10,
			SpeechTTL:       time.Minute,
		},
		Providers: config.ProviderConfig{
			OpenAIKey:    "sk-test",
			GeminiKey:    "gm-test",
			QualityTiers: config.DefaultQualityTiers(),
			MaxAttempts:  3,
			MaxTextLen:   5000,
		},
		Batch: config.BatchConfig{Size: 5},
	}
}

func TestInitializeApp(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{
			name:   "default config",
			mutate: func(*config.Config) {},
		},
		{
			name: "auth enabled",
			mutate: func(cfg *config.Config) {
				cfg.Auth = config.AuthConfig{Enabled: true, JWTSecretKey: "secret"}
			},
		},
		{
			name: "no provider keys",
			mutate: func(cfg *config.Config) {
				cfg.Providers.OpenAIKey = ""
				cfg.Providers.GeminiKey = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testAppConfig()
			tt.mutate(&cfg)

			router := InitializeApp(cfg)
			require.NotNil(t, router)

			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestInitializeServices(t *testing.T) {
	components := InitializeServices(testAppConfig(), nil)

	require.NotNil(t, components)
	assert.NotNil(t, components.Translator)
	assert.NotNil(t, components.Speaker)
}

func TestInitializeDatabase_Disabled(t *testing.T) {
	components := InitializeDatabase(config.DatabaseConfig{Enabled: false})

	assert.Nil(t, components)
}

func TestInitializeRouter(t *testing.T) {
	cfg := testAppConfig()
	cfg.Server.RateLimit = 42
	cfg.Cache.ResponseSize = 7
	cfg.Cache.ResponseTTL = time.Minute
	services := InitializeServices(cfg, nil)

	components := InitializeRouter(services, nil, cfg)

	require.NotNil(t, components)
	assert.NotNil(t, components.HealthHandler)
	assert.Equal(t, 42, components.Config.RateLimit)
	assert.Equal(t, 7, components.Config.Idempotency.Capacity)
	assert.Equal(t, time.Minute, components.Config.Idempotency.TTL)
	assert.NotNil(t, components.Config.Translator)
	assert.NotNil(t, components.Config.Speaker)
}
