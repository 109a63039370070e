// Package service implements the request orchestration layer: cache
// lookups, request coalescing, retries, provider calls, and the batch
// translation queue.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/glotta/translate-service/config"
	"github.com/glotta/translate-service/internal/cache"
	"github.com/glotta/translate-service/internal/credentials"
	"github.com/glotta/translate-service/internal/dedup"
	"github.com/glotta/translate-service/internal/domain/dto"
	"github.com/glotta/translate-service/internal/domain/model"
	"github.com/glotta/translate-service/internal/logger"
	"github.com/glotta/translate-service/internal/metrics"
	"github.com/glotta/translate-service/internal/provider"
	"github.com/glotta/translate-service/internal/queue"
	"github.com/glotta/translate-service/internal/repository"
	"github.com/glotta/translate-service/internal/retry"
)

// usageWriteTimeout bounds the detached usage write so it cannot hang
// forever after the request has been answered.
const usageWriteTimeout = 5 * time.Second

// TranslationStore is the shared durable translation cache.
type TranslationStore interface {
	FindByHash(ctx context.Context, hash string) (*repository.TranslationDocument, error)
	Upsert(ctx context.Context, doc *repository.TranslationDocument) error
}

// UsageRecorder persists usage records.
type UsageRecorder interface {
	Insert(ctx context.Context, record *model.UsageRecord) error
}

// Translator defines the translation operations exposed to the HTTP layer.
type Translator interface {
	Translate(ctx context.Context, userID string, req dto.TranslateRequest) (*model.TranslationResult, error)
	TranslateBatch(ctx context.Context, userID string, req dto.BatchTranslateRequest) []dto.BatchItemResponse
}

// TranslationOption configures a TranslationService.
type TranslationOption func(*TranslationService)

// TranslationService orchestrates a translation request through the
// caches, the in-flight group, and the provider.
type TranslationService struct {
	provider provider.Translator
	resolver *credentials.Resolver
	store    TranslationStore
	usage    UsageRecorder
	cache    *cache.LRU[model.TranslationResult]
	group    *dedup.Group[model.TranslationResult]
	batch    *queue.Queue
	tiers    map[string]config.QualityTier
	policy   retry.Policy
	maxText  int
}

// NewTranslationService creates a TranslationService. The durable
// store and usage recorder are optional; without them the service
// runs purely on the in-process cache.
func NewTranslationService(p provider.Translator, resolver *credentials.Resolver, cfg *config.Config, opts ...TranslationOption) *TranslationService {
	s := &TranslationService{
		provider: p,
		resolver: resolver,
		cache:    cache.NewWithTTL[model.TranslationResult]("translation", cfg.Cache.TranslationSize, cfg.Cache.TranslationTTL),
		group:    dedup.NewGroup[model.TranslationResult](),
		batch:    queue.New(cfg.Batch.Size, cfg.Batch.Pause),
		tiers:    cfg.Providers.QualityTiers,
		policy: retry.Policy{
			MaxAttempts: cfg.Providers.MaxAttempts,
			BaseDelay:   cfg.Providers.RetryBaseDelay,
			Provider:    string(model.ProviderOpenAI),
		},
		maxText: cfg.Providers.MaxTextLen,
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithTranslationStore attaches the shared durable cache.
func WithTranslationStore(store TranslationStore) TranslationOption {
	return func(s *TranslationService) {
		s.store = store
	}
}

// WithUsageRecorder attaches the usage recorder.
func WithUsageRecorder(usage UsageRecorder) TranslationOption {
	return func(s *TranslationService) {
		s.usage = usage
	}
}

// Translate serves one translation request. Results are looked up in
// the in-process cache first, then the shared durable store (for
// requests without a context hint), and only then fetched from the
// provider, with identical concurrent requests coalesced into one
// upstream call.
func (s *TranslationService) Translate(ctx context.Context, userID string, req dto.TranslateRequest) (*model.TranslationResult, error) {
	start := time.Now()

	if err := req.Validate(s.maxText); err != nil {
		metrics.RecordTranslation(time.Since(start), "error", "validation")
		return nil, invalidInput(err)
	}

	quality := req.Quality
	if quality == "" {
		quality = "standard"
	}
	tier, ok := s.tiers[quality]
	if !ok {
		metrics.RecordTranslation(time.Since(start), "error", "validation")
		return nil, invalidInput(&dto.ValidationError{Field: "quality", Message: "unknown quality level: " + quality})
	}

	key := cache.TranslationKey(req.Text, req.TargetLang, quality, req.Context)

	if cached, ok := s.cache.Get(key); ok {
		cached.Source = model.SourceMemoryCache
		metrics.RecordTranslation(time.Since(start), "success", model.SourceMemoryCache)
		return &cached, nil
	}

	cred, err := s.resolver.Resolve(ctx, userID, model.ProviderOpenAI)
	if err != nil {
		metrics.RecordTranslation(time.Since(start), "error", "credentials")
		return nil, configError(err)
	}

	result, err := s.group.Do(ctx, key, func(ctx context.Context) (model.TranslationResult, error) {
		return s.fetch(ctx, userID, cred.Secret, req, quality, tier, key)
	})
	if err != nil {
		metrics.RecordTranslation(time.Since(start), "error", model.SourceProvider)
		if appErr, ok := AsAppError(err); ok {
			return nil, appErr
		}
		return nil, providerFailure(err)
	}

	metrics.RecordTranslation(time.Since(start), "success", result.Source)
	return &result, nil
}

// fetch runs under the in-flight group: exactly one caller per key
// executes it while the rest wait for its outcome.
func (s *TranslationService) fetch(ctx context.Context, userID, secret string, req dto.TranslateRequest, quality string, tier config.QualityTier, key string) (model.TranslationResult, error) {
	// Context hints personalize the output, so only plain requests may
	// consult or populate the shared store.
	shareable := s.store != nil && req.Context == ""
	hash := ""
	if shareable {
		hash = cache.ContentHash(req.Text, req.TargetLang, quality)
		if doc, err := s.store.FindByHash(ctx, hash); err != nil {
			metrics.RecordCacheOperation("durable", "get", "error")
			logger.Logger().Warn().Err(err).Msg("durable cache read failed")
		} else if doc != nil {
			metrics.RecordCacheOperation("durable", "get", "hit")
			result := model.TranslationResult{
				SourceText:      doc.SourceText,
				TargetLang:      doc.TargetLang,
				Translation:     doc.Translation,
				Transliteration: doc.Transliteration,
				Source:          model.SourceDurableCache,
			}.WithSegments()
			s.cache.Set(key, result)
			return result, nil
		} else {
			metrics.RecordCacheOperation("durable", "get", "miss")
		}
	}

	fetched, err := retry.Do(ctx, s.policy, func(ctx context.Context) (*model.TranslationResult, error) {
		return s.provider.Translate(ctx, secret, provider.TranslationRequest{
			Text:       req.Text,
			TargetLang: req.TargetLang,
			Context:    req.Context,
			Model:      tier.Model,
			MaxTokens:  tier.MaxTokens,
		})
	})
	if err != nil {
		return model.TranslationResult{}, fmt.Errorf("translating to %s: %w", req.TargetLang, err)
	}

	result := *fetched
	s.cache.Set(key, result)

	if shareable {
		if err := s.store.Upsert(ctx, &repository.TranslationDocument{
			ContentHash:     hash,
			SourceText:      req.Text,
			TargetLang:      req.TargetLang,
			Quality:         quality,
			Translation:     result.Translation,
			Transliteration: result.Transliteration,
		}); err != nil {
			metrics.RecordCacheOperation("durable", "set", "error")
			logger.Logger().Warn().Err(err).Msg("durable cache write failed")
		} else {
			metrics.RecordCacheOperation("durable", "set", "ok")
		}
	}

	s.recordUsage(userID, model.UsageKindTranslation, string(model.ProviderOpenAI), len(req.Text))
	return result, nil
}

// TranslateBatch translates each text through the batching queue.
// Failures are reported per item; one bad text never sinks its batch.
func (s *TranslationService) TranslateBatch(ctx context.Context, userID string, req dto.BatchTranslateRequest) []dto.BatchItemResponse {
	items := make([]dto.BatchItemResponse, len(req.Texts))

	done := make(chan struct{})
	for i, text := range req.Texts {
		go func(i int, text string) {
			defer func() { done <- struct{}{} }()

			single := dto.TranslateRequest{
				Text:       text,
				TargetLang: req.TargetLang,
				Quality:    req.Quality,
			}

			var result *model.TranslationResult
			err := s.batch.Submit(ctx, func(ctx context.Context) error {
				var translateErr error
				result, translateErr = s.Translate(ctx, userID, single)
				return translateErr
			})

			items[i] = dto.BatchItemResponse{Text: text}
			if err != nil {
				items[i].Error = err.Error()
				return
			}
			items[i].Result = result
		}(i, text)
	}
	for range req.Texts {
		<-done
	}

	return items
}

// recordUsage writes a usage record without blocking the request.
func (s *TranslationService) recordUsage(userID string, kind string, providerName string, volume int) {
	if s.usage == nil {
		return
	}

	record := &model.UsageRecord{
		UserID:   userID,
		Kind:     kind,
		Provider: providerName,
		Volume:   volume,
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), usageWriteTimeout)
		defer cancel()
		if err := s.usage.Insert(ctx, record); err != nil {
			logger.Logger().Warn().Err(err).Str("kind", kind).Msg("usage write failed")
		}
	}()
}

// CacheMetrics exposes the in-process cache counters for readiness
// reporting.
func (s *TranslationService) CacheMetrics() cache.Metrics {
	return s.cache.Metrics()
}
