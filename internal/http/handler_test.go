package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glotta/translate-service/internal/domain/dto"
	"github.com/glotta/translate-service/internal/domain/model"
	"github.com/glotta/translate-service/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeTranslator implements service.Translator for handler tests.
type fakeTranslator struct {
	translate func(ctx context.Context, userID string, req dto.TranslateRequest) (*model.TranslationResult, error)
	batch     func(ctx context.Context, userID string, req dto.BatchTranslateRequest) []dto.BatchItemResponse
}

func (f *fakeTranslator) Translate(ctx context.Context, userID string, req dto.TranslateRequest) (*model.TranslationResult, error) {
	if f.translate != nil {
		return f.translate(ctx, userID, req)
	}
	return &model.TranslationResult{Translation: "xin chào", Source: model.SourceProvider}, nil
}

func (f *fakeTranslator) TranslateBatch(ctx context.Context, userID string, req dto.BatchTranslateRequest) []dto.BatchItemResponse {
	if f.batch != nil {
		return f.batch(ctx, userID, req)
	}
	items := make([]dto.BatchItemResponse, len(req.Texts))
	for i, text := range req.Texts {
		items[i] = dto.BatchItemResponse{Text: text, Result: model.TranslationResult{Translation: "ok"}}
	}
	return items
}

// fakeSpeaker implements service.Speaker for handler tests.
type fakeSpeaker struct {
	speak  func(ctx context.Context, userID string, req dto.SpeakRequest) (*model.SpeechResult, error)
	states map[string]string
}

func (f *fakeSpeaker) Speak(ctx context.Context, userID string, req dto.SpeakRequest) (*model.SpeechResult, error) {
	if f.speak != nil {
		return f.speak(ctx, userID, req)
	}
	return &model.SpeechResult{Audio: []byte("audio-bytes"), Provider: "openai", Format: "mp3"}, nil
}

func (f *fakeSpeaker) BreakerStates() map[string]string {
	if f.states != nil {
		return f.states
	}
	return map[string]string{"openai": "closed"}
}

func setupRouter(translator service.Translator, speaker service.Speaker) *gin.Engine {
	cfg := DefaultRouterConfig()
	cfg.Translator = translator
	cfg.Speaker = speaker
	return NewRouter(NewHealthHandler(), cfg)
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestTranslate(t *testing.T) {
	router := setupRouter(&fakeTranslator{}, &fakeSpeaker{})

	w := doJSON(router, http.MethodPost, "/api/translate", `{"text":"hello","target_lang":"vi"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RequestID)
	assert.NotZero(t, resp.Timestamp)

	dataBytes, _ := json.Marshal(resp.Data)
	var result model.TranslationResult
	require.NoError(t, json.Unmarshal(dataBytes, &result))
	assert.Equal(t, "xin chào", result.Translation)
}

func TestTranslate_InvalidBody(t *testing.T) {
	router := setupRouter(&fakeTranslator{}, &fakeSpeaker{})

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"text":`},
		{"missing text", `{"target_lang":"vi"}`},
		{"missing target_lang", `{"text":"hello"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodPost, "/api/translate", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
			assert.NotEmpty(t, resp.RequestID)
		})
	}
}

func TestTranslate_ServiceErrors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "invalid input",
			err:            &service.AppError{Kind: service.KindInvalidInput, Message: "quality: unknown level"},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   dto.ErrCodeInvalidRequest,
		},
		{
			name:           "missing credential",
			err:            &service.AppError{Kind: service.KindConfig, Message: "no credential for openai"},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   dto.ErrCodeConfiguration,
		},
		{
			name:           "provider failure",
			err:            &service.AppError{Kind: service.KindProviderFailure, Message: "openai: boom"},
			expectedStatus: http.StatusBadGateway,
			expectedCode:   dto.ErrCodeProviderFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			translator := &fakeTranslator{
				translate: func(context.Context, string, dto.TranslateRequest) (*model.TranslationResult, error) {
					return nil, tt.err
				},
			}
			router := setupRouter(translator, &fakeSpeaker{})

			w := doJSON(router, http.MethodPost, "/api/translate", `{"text":"hello","target_lang":"vi"}`)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedCode, resp.Error)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestTranslateBatch(t *testing.T) {
	router := setupRouter(&fakeTranslator{}, &fakeSpeaker{})

	w := doJSON(router, http.MethodPost, "/api/translate/batch", `{"texts":["hello","goodbye"],"target_lang":"vi"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	dataBytes, _ := json.Marshal(resp.Data)
	var items []dto.BatchItemResponse
	require.NoError(t, json.Unmarshal(dataBytes, &items))
	require.Len(t, items, 2)
	assert.Equal(t, "hello", items[0].Text)
	assert.Equal(t, "goodbye", items[1].Text)
}

func TestTranslateBatch_EmptyTexts(t *testing.T) {
	router := setupRouter(&fakeTranslator{}, &fakeSpeaker{})

	w := doJSON(router, http.MethodPost, "/api/translate/batch", `{"texts":[],"target_lang":"vi"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSpeak(t *testing.T) {
	router := setupRouter(&fakeTranslator{}, &fakeSpeaker{})

	w := doJSON(router, http.MethodPost, "/api/speak", `{"text":"xin chào"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "audio-bytes", w.Body.String())
	assert.Equal(t, "audio/mpeg", w.Header().Get("Content-Type"))
	assert.Equal(t, "openai", w.Header().Get("X-Speech-Provider"))
	assert.Equal(t, "false", w.Header().Get("X-Speech-Cached"))
}

func TestSpeak_WavFormat(t *testing.T) {
	speaker := &fakeSpeaker{
		speak: func(context.Context, string, dto.SpeakRequest) (*model.SpeechResult, error) {
			return &model.SpeechResult{Audio: []byte("riff"), Provider: "gemini", Format: "wav", Cached: true}, nil
		},
	}
	router := setupRouter(&fakeTranslator{}, speaker)

	w := doJSON(router, http.MethodPost, "/api/speak", `{"text":"hi","format":"wav"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "audio/wav", w.Header().Get("Content-Type"))
	assert.Equal(t, "gemini", w.Header().Get("X-Speech-Provider"))
	assert.Equal(t, "true", w.Header().Get("X-Speech-Cached"))
}

func TestSpeak_FallbackExhausted(t *testing.T) {
	speaker := &fakeSpeaker{
		speak: func(context.Context, string, dto.SpeakRequest) (*model.SpeechResult, error) {
			return nil, &service.AppError{Kind: service.KindFallbackExhausted, Message: "all providers failed"}
		},
	}
	router := setupRouter(&fakeTranslator{}, speaker)

	w := doJSON(router, http.MethodPost, "/api/speak", `{"text":"hi"}`)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeFallbackExhausted, resp.Error)
}

func TestLanguages(t *testing.T) {
	router := setupRouter(&fakeTranslator{}, &fakeSpeaker{})

	req := httptest.NewRequest(http.MethodGet, "/api/languages", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	dataBytes, _ := json.Marshal(resp.Data)
	var languages []map[string]interface{}
	require.NoError(t, json.Unmarshal(dataBytes, &languages))
	assert.NotEmpty(t, languages)
	assert.Contains(t, languages[0], "code")
}

func TestAudioContentType(t *testing.T) {
	assert.Equal(t, "audio/wav", audioContentType("wav"))
	assert.Equal(t, "audio/mpeg", audioContentType("mp3"))
	assert.Equal(t, "audio/mpeg", audioContentType(""))
}
