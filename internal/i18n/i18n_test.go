//go:build !integration

package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetTranslator(t *testing.T) {
	translator1 := GetTranslator()
	translator2 := GetTranslator()
	assert.NotNil(t, translator1)
	assert.Equal(t, translator1, translator2)
}

func TestTranslator_Translate(t *testing.T) {
	translator := NewTranslator()

	tests := []struct {
		name     string
		key      string
		locale   string
		expected string
	}{
		{
			name:     "english message",
			key:      "error.invalid_request",
			locale:   "en",
			expected: "Invalid request",
		},
		{
			name:     "vietnamese message",
			key:      "error.invalid_request",
			locale:   "vi",
			expected: "Yêu cầu không hợp lệ",
		},
		{
			name:     "empty locale defaults to english",
			key:      "error.provider_failure",
			locale:   "",
			expected: "Translation provider is unavailable",
		},
		{
			name:     "unsupported locale falls back to english",
			key:      "error.fallback_exhausted",
			locale:   "fr",
			expected: "No speech provider could serve the request",
		},
		{
			name:     "unknown key returns key",
			key:      "error.does_not_exist",
			locale:   "en",
			expected: "error.does_not_exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, translator.Translate(tt.key, tt.locale))
		})
	}
}

func TestGetLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{"no header", "", DefaultLocale},
		{"simple locale", "vi", "vi"},
		{"locale with region", "vi-VN", "vi"},
		{"weighted list", "vi-VN,vi;q=0.9,en;q=0.8", "vi"},
		{"unsupported falls back", "fr-FR,fr;q=0.9", DefaultLocale},
		{"uppercase normalized", "VI", "vi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				c.Request.Header.Set(AcceptLanguageHeader, tt.header)
			}
			assert.Equal(t, tt.expected, GetLocale(c))
		})
	}
}

func TestSupportedLanguages(t *testing.T) {
	langs := SupportedLanguages()
	assert.NotEmpty(t, langs)

	// The returned slice is a copy.
	langs[0].Code = "zz"
	assert.NotEqual(t, "zz", SupportedLanguages()[0].Code)
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("vi"))
	assert.True(t, IsSupported("ko"))
	assert.False(t, IsSupported("xx"))
	assert.False(t, IsSupported(""))
}

func TestTransliteratingLanguagesFlagged(t *testing.T) {
	byCode := make(map[string]Language)
	for _, l := range SupportedLanguages() {
		byCode[l.Code] = l
	}

	assert.True(t, byCode["ko"].Transliterates)
	assert.True(t, byCode["ja"].Transliterates)
	assert.False(t, byCode["es"].Transliterates)
}
