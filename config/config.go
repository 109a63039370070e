// Package config provides configuration management for the translate service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server    ServerConfig
	Cache     CacheConfig
	Auth      AuthConfig
	Database  DatabaseConfig
	Providers ProviderConfig
	Batch     BatchConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port        string
	RateLimit   int
	RateWindow  time.Duration
	CORSOrigins []string
}

// CacheConfig holds process-local cache configuration.
type CacheConfig struct {
	// TranslationSize is the capacity of the in-process translation cache.
	TranslationSize int
	// TranslationTTL is how long a cached translation stays valid.
	TranslationTTL time.Duration
	// SpeechSize is the capacity of the in-process audio cache.
	SpeechSize int
	// SpeechTTL is how long cached audio stays valid.
	SpeechTTL time.Duration
	// ResponseSize and ResponseTTL configure the idempotent response cache.
	ResponseSize int
	ResponseTTL  time.Duration
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	Enabled      bool
	JWTSecretKey string
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	UsageTTL     time.Duration
	Enabled      bool
}

// QualityTier maps a requested quality level to a model and token budget.
// The mapping is product policy, kept as data rather than code.
type QualityTier struct {
	Model     string
	MaxTokens int
}

// ProviderConfig holds external provider configuration.
type ProviderConfig struct {
	// OpenAIKey is the system-default OpenAI credential.
	OpenAIKey string
	// GeminiKey is the system-default Gemini credential.
	GeminiKey string
	// QualityTiers maps quality levels to translation models.
	QualityTiers map[string]QualityTier
	// SpeechVoice is the default voice for synthesis.
	SpeechVoice string
	// SpeechAutoThreshold is the input length (runes) above which auto mode
	// prefers the higher-throughput secondary provider.
	SpeechAutoThreshold int
	// MaxAttempts is the retry budget for provider calls.
	MaxAttempts int
	// RetryBaseDelay is the base delay for exponential backoff.
	RetryBaseDelay time.Duration
	// MaxTextLen is the maximum accepted input length in runes.
	MaxTextLen int
}

// BatchConfig holds request batching queue configuration.
type BatchConfig struct {
	// Size is the number of tasks executed concurrently per batch.
	Size int
	// Pause is the delay between consecutive batches.
	Pause time.Duration
}

// DefaultQualityTiers returns the built-in quality-to-model mapping.
func DefaultQualityTiers() map[string]QualityTier {
	return map[string]QualityTier{
		"draft":    {Model: "gpt-4o-mini", MaxTokens: 256},
		"standard": {Model: "gpt-4o-mini", MaxTokens: 512},
		"premium":  {Model: "gpt-4o", MaxTokens: 1024},
	}
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			RateLimit:   getEnvInt("RATE_LIMIT", 100),
			RateWindow:  getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins: parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
		},
		Cache: CacheConfig{
			TranslationSize: getEnvInt("TRANSLATION_CACHE_SIZE", 1000),
			TranslationTTL:  getEnvDuration("TRANSLATION_CACHE_TTL", time.Hour),
			SpeechSize:      getEnvInt("SPEECH_CACHE_SIZE", 200),
			SpeechTTL:       getEnvDuration("SPEECH_CACHE_TTL", time.Hour),
			ResponseSize:    getEnvInt("RESPONSE_CACHE_SIZE", 500),
			ResponseTTL:     getEnvDuration("RESPONSE_CACHE_TTL", 5*time.Minute),
		},
		Auth: AuthConfig{
			Enabled:      getEnvBool("AUTH_ENABLED", false),
			JWTSecretKey: getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
		},
		Database: DatabaseConfig{
			URI:          getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName: getEnv("MONGODB_DATABASE", "translate_service"),
			UsageTTL:     getEnvDuration("MONGODB_USAGE_TTL", 90*24*time.Hour),
			Enabled:      getEnvBool("MONGODB_ENABLED", false),
		},
		Providers: ProviderConfig{
			OpenAIKey:           getEnv("OPENAI_API_KEY", ""),
			GeminiKey:           getEnv("GEMINI_API_KEY", ""),
			QualityTiers:        parseQualityTiers(os.Getenv("QUALITY_TIERS")),
			SpeechVoice:         getEnv("SPEECH_VOICE", "alloy"),
			SpeechAutoThreshold: getEnvInt("SPEECH_AUTO_THRESHOLD", 600),
			MaxAttempts:         getEnvInt("PROVIDER_MAX_ATTEMPTS", 3),
			RetryBaseDelay:      getEnvDuration("PROVIDER_RETRY_BASE_DELAY", 500*time.Millisecond),
			MaxTextLen:          getEnvInt("MAX_TEXT_LEN", 5000),
		},
		Batch: BatchConfig{
			Size:  getEnvInt("BATCH_SIZE", 5),
			Pause: getEnvDuration("BATCH_PAUSE", 200*time.Millisecond),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

// parseQualityTiers parses "level:model:maxTokens" triples separated by commas,
// e.g. "draft:gpt-4o-mini:256,premium:gpt-4o:1024". Unparseable entries are
// skipped; an empty input yields the defaults.
func parseQualityTiers(s string) map[string]QualityTier {
	tiers := DefaultQualityTiers()
	if s == "" {
		return tiers
	}
	for _, part := range strings.Split(s, ",") {
		fields := strings.Split(strings.TrimSpace(part), ":")
		if len(fields) != 3 {
			continue
		}
		maxTokens, err := strconv.Atoi(fields[2])
		if err != nil || maxTokens <= 0 || fields[0] == "" || fields[1] == "" {
			continue
		}
		tiers[fields[0]] = QualityTier{Model: fields[1], MaxTokens: maxTokens}
	}
	return tiers
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
