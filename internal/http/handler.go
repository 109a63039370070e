// Package http provides HTTP handlers and routing for the translation service.
package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/glotta/translate-service/internal/domain/dto"
	"github.com/glotta/translate-service/internal/i18n"
	"github.com/glotta/translate-service/internal/middleware"
	"github.com/glotta/translate-service/internal/service"
)

// Handler contains the HTTP handlers for the translation and speech endpoints.
type Handler struct {
	translator service.Translator
	speaker    service.Speaker
}

// NewHandler creates a new HTTP handler with the given services.
func NewHandler(translator service.Translator, speaker service.Speaker) *Handler {
	return &Handler{
		translator: translator,
		speaker:    speaker,
	}
}

// Translate handles POST /api/translate.
//
// @Summary     Translate text
// @Description Translates text into the target language. Repeated requests for the same text are served from cache.
// @Tags        Translation
// @Accept      json
// @Produce     json
// @Param       request body dto.TranslateRequest true "Translation request"
// @Success     200 {object} dto.SuccessResponse{data=model.TranslationResult}
// @Failure     400 {object} dto.ErrorResponse "Invalid request"
// @Failure     500 {object} dto.ErrorResponse "No credential configured"
// @Failure     502 {object} dto.ErrorResponse "Provider failure"
// @Router      /api/translate [post]
func (h *Handler) Translate(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.TranslateRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	result, err := h.translator.Translate(c.Request.Context(), middleware.GetUserID(c), *req)
	if err != nil {
		builder.AppError(err)
		return
	}

	builder.SuccessOK(result)
}

// TranslateBatch handles POST /api/translate/batch.
//
// @Summary     Translate a batch of texts
// @Description Translates multiple texts into one target language. Items fail independently; the response preserves input order.
// @Tags        Translation
// @Accept      json
// @Produce     json
// @Param       request body dto.BatchTranslateRequest true "Batch translation request"
// @Success     200 {object} dto.SuccessResponse{data=[]dto.BatchItemResponse}
// @Failure     400 {object} dto.ErrorResponse "Invalid request"
// @Router      /api/translate/batch [post]
func (h *Handler) TranslateBatch(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.BatchTranslateRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if len(req.Texts) == 0 {
		builder.ErrorWithMessage(http.StatusBadRequest, dto.ErrEmptyBatch.Error(), dto.ErrEmptyBatch)
		return
	}

	items := h.translator.TranslateBatch(c.Request.Context(), middleware.GetUserID(c), *req)
	builder.SuccessOK(items)
}

// Speak handles POST /api/speak.
//
// The response body is the raw audio payload, not a JSON envelope.
// Metadata travels in headers so clients can stream the bytes straight
// to a player.
//
// @Summary     Synthesize speech
// @Description Converts text to audio through the provider chain. Returns raw audio bytes.
// @Tags        Speech
// @Accept      json
// @Produce     audio/mpeg
// @Param       request body dto.SpeakRequest true "Speech request"
// @Success     200 {file} binary "Audio payload"
// @Failure     400 {object} dto.ErrorResponse "Invalid request"
// @Failure     502 {object} dto.ErrorResponse "Provider failure"
// @Failure     503 {object} dto.ErrorResponse "All providers failed"
// @Router      /api/speak [post]
func (h *Handler) Speak(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.SpeakRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	result, err := h.speaker.Speak(c.Request.Context(), middleware.GetUserID(c), *req)
	if err != nil {
		builder.AppError(err)
		return
	}

	c.Header("X-Speech-Provider", result.Provider)
	c.Header("X-Speech-Cached", strconv.FormatBool(result.Cached))
	c.Data(http.StatusOK, audioContentType(result.Format), result.Audio)
}

// Languages handles GET /api/languages.
//
// @Summary     List supported languages
// @Tags        Translation
// @Produce     json
// @Success     200 {object} dto.SuccessResponse{data=[]i18n.Language}
// @Router      /api/languages [get]
func (h *Handler) Languages(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(i18n.SupportedLanguages())
}

// audioContentType maps an audio format to its MIME type.
func audioContentType(format string) string {
	switch format {
	case "wav":
		return "audio/wav"
	default:
		return "audio/mpeg"
	}
}
