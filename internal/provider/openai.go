package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/glotta/translate-service/internal/domain/model"
	"github.com/glotta/translate-service/internal/retry"
)

// translationPayload is the shape we ask the chat model to answer
// with. Models are inconsistent about field names, so alias columns
// absorb the common variants.
type translationPayload struct {
	Translation     string `json:"translation"`
	TranslatedText  string `json:"translated_text"`
	Text            string `json:"text"`
	Transliteration string `json:"transliteration"`
	Romanization    string `json:"romanization"`
	Phonetic        string `json:"phonetic"`
}

func (p translationPayload) translation() string {
	for _, v := range []string{p.Translation, p.TranslatedText, p.Text} {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

func (p translationPayload) transliteration() string {
	for _, v := range []string{p.Transliteration, p.Romanization, p.Phonetic} {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

// OpenAI serves both translation and speech synthesis through the
// OpenAI API. Clients are constructed per call because the credential
// is resolved per request.
type OpenAI struct {
	speechModel string
	speed       float64
}

// NewOpenAI returns an OpenAI provider using the given speech model,
// or tts-1 when empty.
func NewOpenAI(speechModel string) *OpenAI {
	if speechModel == "" {
		speechModel = "tts-1"
	}
	return &OpenAI{
		speechModel: speechModel,
		speed:       1.0,
	}
}

func (p *OpenAI) Name() model.ProviderName {
	return model.ProviderOpenAI
}

// Translate asks a chat model for a JSON translation of req.Text and
// normalizes the answer into a TranslationResult.
func (p *OpenAI) Translate(ctx context.Context, secret string, req TranslationRequest) (*model.TranslationResult, error) {
	client := openai.NewClient(secret)

	system := "You are a professional translator. Respond with a JSON object containing " +
		"\"translation\" and, when the target language uses a non-Latin script, \"transliteration\". " +
		"Respond with JSON only, no commentary."

	user := fmt.Sprintf("Translate the following text to %s:\n%s", req.TargetLang, req.Text)
	if req.Context != "" {
		user = fmt.Sprintf("Context: %s\n\n%s", req.Context, user)
	}

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: 0.3,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, classifyOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, ErrNoCompletion
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	result := &model.TranslationResult{
		SourceText: req.Text,
		TargetLang: req.TargetLang,
		Source:     model.SourceProvider,
	}

	var payload translationPayload
	if err := json.Unmarshal([]byte(content), &payload); err == nil && payload.translation() != "" {
		result.Translation = payload.translation()
		result.Transliteration = payload.transliteration()
	} else {
		// Some models answer in plain text despite the instruction.
		result.Translation = strings.Trim(content, "\"")
	}

	if result.Translation == "" {
		return nil, ErrNoCompletion
	}
	segmented := result.WithSegments()
	return &segmented, nil
}

// Speak synthesizes req.Text and returns the raw audio bytes.
func (p *OpenAI) Speak(ctx context.Context, secret string, req SpeechRequest) ([]byte, error) {
	client := openai.NewClient(secret)

	resp, err := client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(p.speechModel),
		Input:          req.Text,
		Voice:          openai.SpeechVoice(req.Voice),
		Speed:          p.speed,
		ResponseFormat: speechFormat(req.Format),
	})
	if err != nil {
		return nil, classifyOpenAIError(err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("reading speech response: %w", err)
	}
	if len(audio) == 0 {
		return nil, ErrEmptyAudio
	}
	return audio, nil
}

func speechFormat(format string) openai.SpeechResponseFormat {
	switch strings.ToLower(format) {
	case "wav":
		return openai.SpeechResponseFormatWav
	case "opus":
		return openai.SpeechResponseFormatOpus
	case "aac":
		return openai.SpeechResponseFormatAac
	case "flac":
		return openai.SpeechResponseFormatFlac
	default:
		return openai.SpeechResponseFormatMp3
	}
}

// classifyOpenAIError marks client-side API failures as permanent so
// the retry executor does not burn attempts on them.
func classifyOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound, http.StatusUnprocessableEntity:
			return retry.Permanent(err)
		}
	}
	return err
}
