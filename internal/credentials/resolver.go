// Package credentials resolves the API secret to use for an upstream
// call: the caller's own stored credential when one exists, otherwise
// the service-wide default. Secrets are resolved fresh on every call
// and never enter any cache.
package credentials

import (
	"context"
	"errors"

	"github.com/glotta/translate-service/config"
	"github.com/glotta/translate-service/internal/domain/model"
	"github.com/glotta/translate-service/internal/logger"
)

// ErrNoCredential reports that neither the caller nor the service
// configuration holds a usable secret for the requested provider.
var ErrNoCredential = errors.New("no credential configured for provider")

// Store reads per-user credentials. A miss is reported as (nil, nil).
type Store interface {
	Credential(ctx context.Context, userID string, provider model.ProviderName) (*model.Credential, error)
}

// Resolver picks the credential for a provider call.
type Resolver struct {
	store     Store
	openAIKey string
	geminiKey string
}

// NewResolver builds a Resolver over the per-user store and the
// system defaults from configuration. store may be nil when per-user
// credentials are disabled.
func NewResolver(store Store, providers config.ProviderConfig) *Resolver {
	return &Resolver{
		store:     store,
		openAIKey: providers.OpenAIKey,
		geminiKey: providers.GeminiKey,
	}
}

// Resolve returns the credential for userID and provider. A stored
// user credential wins; otherwise the system default applies. Store
// failures degrade to the system default rather than failing the
// request. ErrNoCredential is returned when nothing is configured.
func (r *Resolver) Resolve(ctx context.Context, userID string, provider model.ProviderName) (*model.Credential, error) {
	if r.store != nil && userID != "" {
		cred, err := r.store.Credential(ctx, userID, provider)
		if err != nil {
			logger.Logger().Warn().
				Err(err).
				Str("user_id", userID).
				Str("provider", string(provider)).
				Msg("credential lookup failed, using system default")
		} else if cred != nil && cred.WellFormed() {
			return cred, nil
		}
	}

	secret := r.systemSecret(provider)
	if secret == "" {
		return nil, ErrNoCredential
	}
	return &model.Credential{
		Provider: provider,
		Scope:    model.ScopeSystem,
		Secret:   secret,
	}, nil
}

func (r *Resolver) systemSecret(provider model.ProviderName) string {
	switch provider {
	case model.ProviderOpenAI:
		return r.openAIKey
	case model.ProviderGemini:
		return r.geminiKey
	default:
		return ""
	}
}
