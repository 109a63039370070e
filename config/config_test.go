//go:build !integration

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	assert.Equal(t, 1000, cfg.Cache.TranslationSize)
	assert.Equal(t, time.Hour, cfg.Cache.TranslationTTL)
	assert.Equal(t, 200, cfg.Cache.SpeechSize)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, 3, cfg.Providers.MaxAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.Providers.RetryBaseDelay)
	assert.Equal(t, 600, cfg.Providers.SpeechAutoThreshold)
	assert.Equal(t, 5, cfg.Batch.Size)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TRANSLATION_CACHE_SIZE", "50")
	t.Setenv("TRANSLATION_CACHE_TTL", "10m")
	t.Setenv("MONGODB_ENABLED", "true")
	t.Setenv("PROVIDER_MAX_ATTEMPTS", "5")
	t.Setenv("BATCH_SIZE", "8")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 50, cfg.Cache.TranslationSize)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TranslationTTL)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, 5, cfg.Providers.MaxAttempts)
	assert.Equal(t, 8, cfg.Batch.Size)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT", "not-a-number")
	t.Setenv("RATE_WINDOW", "soon")
	t.Setenv("MONGODB_ENABLED", "maybe")

	cfg := Load()

	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	assert.False(t, cfg.Database.Enabled)
}

func TestParseQualityTiers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, tiers map[string]QualityTier)
	}{
		{
			name:  "empty input yields defaults",
			input: "",
			check: func(t *testing.T, tiers map[string]QualityTier) {
				assert.Equal(t, DefaultQualityTiers(), tiers)
			},
		},
		{
			name:  "override single tier",
			input: "premium:gpt-4.1:2048",
			check: func(t *testing.T, tiers map[string]QualityTier) {
				assert.Equal(t, QualityTier{Model: "gpt-4.1", MaxTokens: 2048}, tiers["premium"])
				assert.Equal(t, DefaultQualityTiers()["draft"], tiers["draft"])
			},
		},
		{
			name:  "add new tier",
			input: "turbo:gpt-4o-mini:128",
			check: func(t *testing.T, tiers map[string]QualityTier) {
				assert.Equal(t, QualityTier{Model: "gpt-4o-mini", MaxTokens: 128}, tiers["turbo"])
			},
		},
		{
			name:  "malformed entries skipped",
			input: "bad,also:bad,worse:gpt-4o:zero",
			check: func(t *testing.T, tiers map[string]QualityTier) {
				assert.Equal(t, DefaultQualityTiers(), tiers)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, parseQualityTiers(tt.input))
		})
	}
}

func TestParseCORSOrigins(t *testing.T) {
	origins := parseCORSOrigins("https://app.example.com, https://admin.example.com")
	assert.Contains(t, origins, "http://localhost:3000")
	assert.Contains(t, origins, "https://app.example.com")
	assert.Contains(t, origins, "https://admin.example.com")

	defaults := parseCORSOrigins("")
	assert.Len(t, defaults, 2)
}
