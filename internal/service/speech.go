package service

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/glotta/translate-service/config"
	"github.com/glotta/translate-service/internal/cache"
	"github.com/glotta/translate-service/internal/credentials"
	"github.com/glotta/translate-service/internal/dedup"
	"github.com/glotta/translate-service/internal/domain/dto"
	"github.com/glotta/translate-service/internal/domain/model"
	"github.com/glotta/translate-service/internal/logger"
	"github.com/glotta/translate-service/internal/metrics"
	"github.com/glotta/translate-service/internal/provider"
	"github.com/glotta/translate-service/internal/retry"
)

// Speaker defines the speech operations exposed to the HTTP layer.
type Speaker interface {
	Speak(ctx context.Context, userID string, req dto.SpeakRequest) (*model.SpeechResult, error)
	BreakerStates() map[string]string
}

// SpeechOption configures a SpeechService.
type SpeechOption func(*SpeechService)

// SpeechService synthesizes audio through an ordered provider chain.
// Each provider sits behind its own circuit breaker; when one fails or
// its circuit is open the next provider in the chain takes the call.
type SpeechService struct {
	primary   provider.Speaker
	secondary provider.Speaker
	breakers  map[model.ProviderName]*provider.Breaker
	resolver  *credentials.Resolver
	usage     UsageRecorder
	cache     *cache.LRU[model.SpeechResult]
	group     *dedup.Group[model.SpeechResult]

	voice         string
	autoThreshold int
	maxText       int
	attempts      int
	baseDelay     time.Duration
}

// NewSpeechService creates a SpeechService with primary and secondary
// backends. secondary may be nil, in which case the chain has a single
// link.
func NewSpeechService(primary, secondary provider.Speaker, resolver *credentials.Resolver, cfg *config.Config, opts ...SpeechOption) *SpeechService {
	s := &SpeechService{
		primary:   primary,
		secondary: secondary,
		resolver:  resolver,
		cache:     cache.NewWithTTL[model.SpeechResult]("speech", cfg.Cache.SpeechSize, cfg.Cache.SpeechTTL),
		group:     dedup.NewGroup[model.SpeechResult](),
		breakers: map[model.ProviderName]*provider.Breaker{
			primary.Name(): provider.NewBreaker(string(primary.Name())),
		},
		voice:         cfg.Providers.SpeechVoice,
		autoThreshold: cfg.Providers.SpeechAutoThreshold,
		maxText:       cfg.Providers.MaxTextLen,
		attempts:      cfg.Providers.MaxAttempts,
		baseDelay:     cfg.Providers.RetryBaseDelay,
	}
	if secondary != nil {
		s.breakers[secondary.Name()] = provider.NewBreaker(string(secondary.Name()))
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithSpeechUsageRecorder attaches the usage recorder.
func WithSpeechUsageRecorder(usage UsageRecorder) SpeechOption {
	return func(s *SpeechService) {
		s.usage = usage
	}
}

// Speak serves one synthesis request: cache first, then the provider
// chain, with identical concurrent requests coalesced upstream.
func (s *SpeechService) Speak(ctx context.Context, userID string, req dto.SpeakRequest) (*model.SpeechResult, error) {
	if err := req.Validate(s.maxText); err != nil {
		return nil, invalidInput(err)
	}

	voice := req.Voice
	if voice == "" {
		voice = s.voice
	}
	format := req.Format
	if format == "" {
		format = "mp3"
	}
	mode := model.SpeechMode(req.Mode)
	if mode == "" {
		mode = model.SpeechModeAuto
	}

	key := cache.SpeechKey(req.Text, voice, string(mode), format)

	if cached, ok := s.cache.Get(key); ok {
		cached.Cached = true
		return &cached, nil
	}

	result, err := s.group.Do(ctx, key, func(ctx context.Context) (model.SpeechResult, error) {
		return s.synthesize(ctx, userID, req.Text, voice, format, mode, key)
	})
	if err != nil {
		if appErr, ok := AsAppError(err); ok {
			return nil, appErr
		}
		return nil, fallbackExhausted(err)
	}
	return &result, nil
}

// chain returns the providers to try, in order, for the given mode and
// input length. The mode only chooses who goes first; whatever provider
// is selected, the other one still backs it up when the call fails.
func (s *SpeechService) chain(mode model.SpeechMode, textLen int) []provider.Speaker {
	if s.secondary == nil {
		return []provider.Speaker{s.primary}
	}

	switch mode {
	case model.SpeechModePrimary:
		return []provider.Speaker{s.primary, s.secondary}
	case model.SpeechModeSecondary:
		return []provider.Speaker{s.secondary, s.primary}
	}

	// Long inputs go to the higher-throughput secondary first.
	if s.autoThreshold > 0 && textLen > s.autoThreshold {
		return []provider.Speaker{s.secondary, s.primary}
	}
	return []provider.Speaker{s.primary, s.secondary}
}

func (s *SpeechService) synthesize(ctx context.Context, userID, text, voice, format string, mode model.SpeechMode, key string) (model.SpeechResult, error) {
	chain := s.chain(mode, utf8.RuneCountInString(text))

	var lastErr error
	credentialMisses := 0

	for i, speaker := range chain {
		name := speaker.Name()
		breaker := s.breakers[name]

		if i > 0 {
			metrics.RecordFallback(string(chain[i-1].Name()), string(name))
		}

		if breaker.Open() {
			logger.Logger().Warn().Str("provider", string(name)).Msg("circuit open, skipping provider")
			lastErr = provider.ErrBreakerOpen
			continue
		}

		cred, err := s.resolver.Resolve(ctx, userID, name)
		if err != nil {
			credentialMisses++
			lastErr = err
			continue
		}

		audio, err := provider.Guard(breaker, func() ([]byte, error) {
			return retry.Do(ctx, retry.Policy{
				MaxAttempts: s.attempts,
				BaseDelay:   s.baseDelay,
				Provider:    string(name),
			}, func(ctx context.Context) ([]byte, error) {
				return speaker.Speak(ctx, cred.Secret, provider.SpeechRequest{
					Text:   text,
					Voice:  voice,
					Format: format,
				})
			})
		})
		if err != nil {
			metrics.RecordSpeech(string(name), "error")
			logger.Logger().Warn().Err(err).Str("provider", string(name)).Msg("speech provider failed")
			lastErr = err
			continue
		}

		result := model.SpeechResult{
			Audio:    audio,
			Provider: string(name),
			Format:   format,
		}
		s.cache.Set(key, result)
		metrics.RecordSpeech(string(name), "success")
		s.recordUsage(userID, model.UsageKindSpeech, string(name), len(audio))
		return result, nil
	}

	if credentialMisses == len(chain) {
		return model.SpeechResult{}, configError(lastErr)
	}
	if len(chain) == 1 {
		return model.SpeechResult{}, providerFailure(lastErr)
	}
	return model.SpeechResult{}, fallbackExhausted(lastErr)
}

// BreakerStates reports each provider's circuit state for readiness
// reporting.
func (s *SpeechService) BreakerStates() map[string]string {
	states := make(map[string]string, len(s.breakers))
	for name, b := range s.breakers {
		states[string(name)] = b.State()
	}
	return states
}

// CacheMetrics exposes the audio cache counters.
func (s *SpeechService) CacheMetrics() cache.Metrics {
	return s.cache.Metrics()
}

// recordUsage writes a usage record without blocking the request.
func (s *SpeechService) recordUsage(userID, kind, providerName string, volume int) {
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
