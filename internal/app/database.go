// Package app provides database initialization and setup.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/glotta/translate-service/config"
	"github.com/glotta/translate-service/internal/repository"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB               *repository.MongoDB
	TranslationsRepo *repository.TranslationsRepository
	CredentialsRepo  *repository.CredentialsRepository
	UsageRepo        *repository.UsageRepository
}

// InitializeDatabase initializes the MongoDB connection and creates the
// repositories. Returns nil if the database is disabled or the connection
// fails; the service runs degraded without the shared cache, per-user
// credentials, or usage records.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	mongoCfg := repository.DefaultMongoConfig()
	if cfg.UsageTTL > 0 {
		mongoCfg.UsageTTL = cfg.UsageTTL
	}

	db, err := repository.NewMongoDBWithConfig(cfg.URI, cfg.DatabaseName, mongoCfg)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	return &DatabaseComponents{
		DB:               db,
		TranslationsRepo: repository.NewTranslationsRepository(db),
		CredentialsRepo:  repository.NewCredentialsRepository(db),
		UsageRepo:        repository.NewUsageRepository(db),
	}
}
