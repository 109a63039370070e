// Package app provides service initialization.
package app

import (
	"github.com/glotta/translate-service/config"
	"github.com/glotta/translate-service/internal/credentials"
	"github.com/glotta/translate-service/internal/provider"
	"github.com/glotta/translate-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Translator *service.TranslationService
	Speaker    *service.SpeechService
}

// InitializeServices wires the providers, the credential resolver, and
// the translation and speech services.
func InitializeServices(cfg config.Config, dbComponents *DatabaseComponents) *ServiceComponents {
	var credStore credentials.Store
	if dbComponents != nil {
		credStore = dbComponents.CredentialsRepo
	}
	resolver := credentials.NewResolver(credStore, cfg.Providers)

	openAI := provider.NewOpenAI("tts-1")
	gemini := provider.NewGemini("gemini-2.5-flash-preview-tts", cfg.Providers.SpeechVoice)

	var translationOpts []service.TranslationOption
	var speechOpts []service.SpeechOption
	if dbComponents != nil {
		translationOpts = append(translationOpts,
			service.WithTranslationStore(dbComponents.TranslationsRepo),
			service.WithUsageRecorder(dbComponents.UsageRepo),
		)
		speechOpts = append(speechOpts,
			service.WithSpeechUsageRecorder(dbComponents.UsageRepo),
		)
	}

	return &ServiceComponents{
		Translator: service.NewTranslationService(openAI, resolver, &cfg, translationOpts...),
		Speaker:    service.NewSpeechService(openAI, gemini, resolver, &cfg, speechOpts...),
	}
}
