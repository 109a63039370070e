//go:build !integration

package provider

import (
	"errors"
	"net/http"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"

	"github.com/glotta/translate-service/internal/domain/model"
	"github.com/glotta/translate-service/internal/retry"
)

func TestTranslationPayload_AliasNormalization(t *testing.T) {
	tests := []struct {
		name                string
		payload             translationPayload
		wantTranslation     string
		wantTransliteration string
	}{
		{
			name:            "canonical fields",
			payload:         translationPayload{Translation: "hola", Transliteration: "oh-la"},
			wantTranslation: "hola", wantTransliteration: "oh-la",
		},
		{
			name:            "translated_text alias",
			payload:         translationPayload{TranslatedText: "bonjour"},
			wantTranslation: "bonjour",
		},
		{
			name:            "text alias",
			payload:         translationPayload{Text: "ciao"},
			wantTranslation: "ciao",
		},
		{
			name:                "romanization alias",
			payload:             translationPayload{Translation: "こんにちは", Romanization: "konnichiwa"},
			wantTranslation:     "こんにちは",
			wantTransliteration: "konnichiwa",
		},
		{
			name:                "phonetic alias",
			payload:             translationPayload{Translation: "привет", Phonetic: "privet"},
			wantTranslation:     "привет",
			wantTransliteration: "privet",
		},
		{
			name:            "canonical wins over alias",
			payload:         translationPayload{Translation: "a", TranslatedText: "b", Text: "c"},
			wantTranslation: "a",
		},
		{
			name:            "whitespace-only canonical falls through",
			payload:         translationPayload{Translation: "  ", TranslatedText: "b"},
			wantTranslation: "b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantTranslation, tt.payload.translation())
			assert.Equal(t, tt.wantTransliteration, tt.payload.transliteration())
		})
	}
}

func TestSpeechFormat(t *testing.T) {
	assert.Equal(t, openai.SpeechResponseFormatMp3, speechFormat("mp3"))
	assert.Equal(t, openai.SpeechResponseFormatWav, speechFormat("wav"))
	assert.Equal(t, openai.SpeechResponseFormatOpus, speechFormat("OPUS"))
	assert.Equal(t, openai.SpeechResponseFormatAac, speechFormat("aac"))
	assert.Equal(t, openai.SpeechResponseFormatFlac, speechFormat("flac"))
	assert.Equal(t, openai.SpeechResponseFormatMp3, speechFormat(""))
	assert.Equal(t, openai.SpeechResponseFormatMp3, speechFormat("ogg"))
}

func TestClassifyOpenAIError(t *testing.T) {
	unauthorized := &openai.APIError{HTTPStatusCode: http.StatusUnauthorized, Message: "bad key"}
	assert.True(t, retry.IsPermanent(classifyOpenAIError(unauthorized)))

	badRequest := &openai.APIError{HTTPStatusCode: http.StatusBadRequest, Message: "bad input"}
	assert.True(t, retry.IsPermanent(classifyOpenAIError(badRequest)))

	rateLimited := &openai.APIError{HTTPStatusCode: http.StatusTooManyRequests, Message: "slow down"}
	assert.False(t, retry.IsPermanent(classifyOpenAIError(rateLimited)))

	serverErr := &openai.APIError{HTTPStatusCode: http.StatusInternalServerError, Message: "oops"}
	assert.False(t, retry.IsPermanent(classifyOpenAIError(serverErr)))

	plain := errors.New("connection reset")
	assert.False(t, retry.IsPermanent(classifyOpenAIError(plain)))
}

func TestClassifyGeminiError(t *testing.T) {
	denied := genai.APIError{Code: http.StatusForbidden, Message: "denied"}
	assert.True(t, retry.IsPermanent(classifyGeminiError(denied)))

	overloaded := genai.APIError{Code: http.StatusServiceUnavailable, Message: "busy"}
	assert.False(t, retry.IsPermanent(classifyGeminiError(overloaded)))
}

func TestExtractAudio(t *testing.T) {
	assert.Nil(t, extractAudio(nil))
	assert.Nil(t, extractAudio(&genai.GenerateContentResponse{}))

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			nil,
			{Content: nil},
			{Content: &genai.Content{Parts: []*genai.Part{
				nil,
				{Text: "not audio"},
				{InlineData: &genai.Blob{Data: []byte{1, 2, 3}}},
			}}},
		},
	}
	assert.Equal(t, []byte{1, 2, 3}, extractAudio(resp))
}

func TestProviderNames(t *testing.T) {
	assert.Equal(t, model.ProviderOpenAI, NewOpenAI("").Name())
	assert.Equal(t, model.ProviderGemini, NewGemini("", "").Name())
}

func TestBreaker_GuardPassesResultsThrough(t *testing.T) {
	b := NewBreaker("test")

	result, err := Guard(b, func() (string, error) {
		return "ok", nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, "closed", b.State())
	assert.False(t, b.Open())
}

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	b := NewBreaker("test")
	boom := errors.New("backend down")

	for i := 0; i < 5; i++ {
		_, err := Guard(b, func() (int, error) {
			return 0, boom
		})
		assert.ErrorIs(t, err, boom)
	}

	assert.True(t, b.Open())

	calls := 0
	_, err := Guard(b, func() (int, error) {
		calls++
		return 1, nil
	})
	assert.True(t, IsBreakerOpen(err))
	assert.Equal(t, 0, calls, "an open circuit must refuse without calling the backend")
}

func TestBreaker_SuccessResetsFailureStreak(t *testing.T) {
	b := NewBreaker("test")
	boom := errors.New("flaky")

	for i := 0; i < 4; i++ {
		_, _ = Guard(b, func() (int, error) { return 0, boom })
	}
	_, err := Guard(b, func() (int, error) { return 1, nil })
	assert.NoError(t, err)

	// The streak reset, so four more failures must not trip it.
	for i := 0; i < 4; i++ {
		_, _ = Guard(b, func() (int, error) { return 0, boom })
	}
	assert.False(t, b.Open())
}

func TestIsBreakerOpen(t *testing.T) {
	assert.True(t, IsBreakerOpen(ErrBreakerOpen))
	assert.False(t, IsBreakerOpen(errors.New("other")))
	assert.False(t, IsBreakerOpen(nil))
}
