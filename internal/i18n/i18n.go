// Package i18n provides internationalization support for the translate
// service: translation of user-facing API messages and the catalogue of
// languages the service can translate into.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,vi;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.invalid_request":      "Invalid request",
			"error.invalid_request_body": "Invalid request body",
			"error.internal_error":       "An unexpected error occurred",
			"error.unauthorized":         "Unauthorized",
			"error.not_found":            "Not found",
			"error.rate_limit_exceeded":  "Too many requests, please try again later",
			"error.timeout":              "Request timed out",
			"error.provider_failure":     "Translation provider is unavailable",
			"error.fallback_exhausted":   "No speech provider could serve the request",
			"error.config_error":         "Service is not configured for this provider",
			"error.invalid_token":        "Invalid or expired token",
			"error.token_required":       "Authentication token is required",

			"success.translated":         "Translation completed successfully",
			"success.speech_synthesized": "Speech synthesis completed successfully",
		},
		"vi": {
			"error.invalid_request":      "Yêu cầu không hợp lệ",
			"error.invalid_request_body": "Nội dung yêu cầu không hợp lệ",
			"error.internal_error":       "Đã xảy ra lỗi không mong muốn",
			"error.unauthorized":         "Không được phép",
			"error.not_found":            "Không tìm thấy",
			"error.rate_limit_exceeded":  "Quá nhiều yêu cầu, vui lòng thử lại sau",
			"error.timeout":              "Yêu cầu đã hết thời gian chờ",
			"error.provider_failure":     "Dịch vụ dịch thuật hiện không khả dụng",
			"error.fallback_exhausted":   "Không có dịch vụ đọc nào phục vụ được yêu cầu",
			"error.config_error":         "Dịch vụ chưa được cấu hình cho nhà cung cấp này",
			"error.invalid_token":        "Mã thông báo không hợp lệ hoặc đã hết hạn",
			"error.token_required":       "Cần mã thông báo xác thực",

			"success.translated":         "Dịch thành công",
			"success.speech_synthesized": "Tổng hợp giọng nói thành công",
		},
	}
}
