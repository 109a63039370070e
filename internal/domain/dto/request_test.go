//go:build !integration

package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request TranslateRequest
		maxLen  int
		wantErr error
	}{
		{
			name:    "valid request",
			request: TranslateRequest{Text: "hello", TargetLang: "vi"},
			maxLen:  100,
			wantErr: nil,
		},
		{
			name:    "empty text",
			request: TranslateRequest{Text: "", TargetLang: "vi"},
			maxLen:  100,
			wantErr: ErrEmptyText,
		},
		{
			name:    "whitespace text",
			request: TranslateRequest{Text: "   ", TargetLang: "vi"},
			maxLen:  100,
			wantErr: ErrEmptyText,
		},
		{
			name:    "oversized text",
			request: TranslateRequest{Text: strings.Repeat("a", 101), TargetLang: "vi"},
			maxLen:  100,
			wantErr: ErrTextTooLong,
		},
		{
			name:    "missing target language",
			request: TranslateRequest{Text: "hello"},
			maxLen:  100,
			wantErr: ErrMissingTargetLang,
		},
		{
			name:    "zero max length disables the limit",
			request: TranslateRequest{Text: strings.Repeat("a", 10000), TargetLang: "vi"},
			maxLen:  0,
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate(tt.maxLen)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestBatchTranslateRequest_Validate(t *testing.T) {
	valid := BatchTranslateRequest{Texts: []string{"hello", "goodbye"}, TargetLang: "vi"}
	assert.NoError(t, valid.Validate(100))

	empty := BatchTranslateRequest{TargetLang: "vi"}
	assert.ErrorIs(t, empty.Validate(100), ErrEmptyBatch)

	noLang := BatchTranslateRequest{Texts: []string{"hello"}}
	assert.ErrorIs(t, noLang.Validate(100), ErrMissingTargetLang)

	badItem := BatchTranslateRequest{Texts: []string{"hello", ""}, TargetLang: "vi"}
	assert.ErrorIs(t, badItem.Validate(100), ErrEmptyText)
}

func TestSpeakRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request SpeakRequest
		wantErr error
	}{
		{name: "valid defaults", request: SpeakRequest{Text: "xin chào"}},
		{name: "valid explicit", request: SpeakRequest{Text: "xin chào", Mode: "auto", Format: "mp3"}},
		{name: "forced secondary", request: SpeakRequest{Text: "xin chào", Mode: "secondary", Format: "wav"}},
		{name: "empty text", request: SpeakRequest{}, wantErr: ErrEmptyText},
		{name: "bad mode", request: SpeakRequest{Text: "hi", Mode: "loudly"}, wantErr: ErrInvalidMode},
		{name: "bad format", request: SpeakRequest{Text: "hi", Format: "ogg"}, wantErr: ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate(1000)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestErrCodeFromStatus(t *testing.T) {
	assert.Equal(t, ErrCodeInvalidRequest, ErrCodeFromStatus(400))
	assert.Equal(t, ErrCodeUnauthorized, ErrCodeFromStatus(401))
	assert.Equal(t, ErrCodeRateLimit, ErrCodeFromStatus(429))
	assert.Equal(t, ErrCodeProviderFailure, ErrCodeFromStatus(502))
	assert.Equal(t, ErrCodeFallbackExhausted, ErrCodeFromStatus(503))
	assert.Equal(t, ErrCodeInternal, ErrCodeFromStatus(500))
}

func TestNewError(t *testing.T) {
	resp := NewError(ErrCodeProviderFailure, "upstream unavailable").WithRequestID("req-1")
	assert.Equal(t, ErrCodeProviderFailure, resp.Error)
	assert.Equal(t, "upstream unavailable", resp.Message)
	assert.Equal(t, "req-1", resp.RequestID)
	assert.False(t, resp.Timestamp.IsZero())
}
