// Package provider implements the upstream translation and speech
// synthesis backends and the circuit breaker that guards each of them.
package provider

import (
	"context"
	"errors"

	"github.com/glotta/translate-service/internal/domain/model"
)

var (
	// ErrEmptyAudio is returned when a speech backend answers
	// successfully but delivers no audio bytes.
	ErrEmptyAudio = errors.New("provider returned empty audio payload")

	// ErrNoCompletion is returned when a chat backend answers with no
	// choices.
	ErrNoCompletion = errors.New("provider returned no completion choices")
)

// TranslationRequest carries one translation call to an upstream model.
type TranslationRequest struct {
	Text       string
	TargetLang string
	Context    string
	Model      string
	MaxTokens  int
}

// Translator produces a translation using a caller-supplied credential.
// Implementations must not retain the secret beyond the call.
type Translator interface {
	Translate(ctx context.Context, secret string, req TranslationRequest) (*model.TranslationResult, error)
}

// SpeechRequest carries one synthesis call to an upstream model.
type SpeechRequest struct {
	Text   string
	Voice  string
	Format string
}

// Speaker synthesizes audio using a caller-supplied credential.
type Speaker interface {
	Name() model.ProviderName
	Speak(ctx context.Context, secret string, req SpeechRequest) ([]byte, error)
}
