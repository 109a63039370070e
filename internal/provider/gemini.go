package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/glotta/translate-service/internal/domain/model"
	"github.com/glotta/translate-service/internal/retry"
)

const defaultGeminiSpeechModel = "gemini-2.5-flash-preview-tts"

// Gemini synthesizes speech through the Gemini API. It serves as the
// secondary backend in the speech fallback chain.
type Gemini struct {
	model string
	voice string
}

// NewGemini returns a Gemini speech provider. An empty model selects
// the default TTS-capable model; an empty voice selects Kore.
func NewGemini(speechModel, voice string) *Gemini {
	if speechModel == "" {
		speechModel = defaultGeminiSpeechModel
	}
	if voice == "" {
		voice = "Kore"
	}
	return &Gemini{
		model: speechModel,
		voice: voice,
	}
}

func (p *Gemini) Name() model.ProviderName {
	return model.ProviderGemini
}

// Speak synthesizes req.Text and returns the raw audio bytes. Gemini
// always answers with PCM audio regardless of the requested format;
// callers that need a container format transcode downstream.
func (p *Gemini) Speak(ctx context.Context, secret string, req SpeechRequest) ([]byte, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  secret,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, retry.Permanent(fmt.Errorf("creating gemini client: %w", err))
	}

	resp, err := client.Models.GenerateContent(ctx, p.model, genai.Text(req.Text), &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
					VoiceName: p.voice,
				},
			},
		},
	})
	if err != nil {
		return nil, classifyGeminiError(err)
	}

	audio := extractAudio(resp)
	if len(audio) == 0 {
		return nil, ErrEmptyAudio
	}
	return audio, nil
}

func extractAudio(resp *genai.GenerateContentResponse) []byte {
	if resp == nil {
		return nil
	}
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data
			}
		}
	}
	return nil
}

func classifyGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
			return retry.Permanent(err)
		}
	}
	return err
}
