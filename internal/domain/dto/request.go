// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model, providing validation
// and serialization for API communication.
package dto

import (
	"strings"
	"unicode/utf8"
)

// TranslateRequest represents the JSON request body for the translate endpoint.
//
// @Description Request to translate text into a target language
// @Example {"text": "hello", "target_lang": "vi"}
// @Example {"text": "hello", "target_lang": "vi", "quality": "premium", "context": "formal register"}
type TranslateRequest struct {
	// Text is the source text to translate.
	Text string `json:"text" binding:"required" example:"hello"`
	// TargetLang is the BCP-47 code of the target language.
	TargetLang string `json:"target_lang" binding:"required" example:"vi"`
	// Quality selects the model tier: draft, standard, or premium.
	Quality string `json:"quality,omitempty" example:"standard"`
	// Context is an optional user-supplied style or domain hint. Requests
	// carrying a context bypass the shared durable cache.
	Context string `json:"context,omitempty" example:"casual conversation"`
} // @name TranslateRequest

// BatchTranslateRequest represents the JSON request body for batch translation.
//
// @Description Request to translate multiple texts into one target language
type BatchTranslateRequest struct {
	// Texts is the list of source texts to translate.
	Texts []string `json:"texts" binding:"required,min=1" example:"hello,goodbye"`
	// TargetLang is the BCP-47 code of the target language.
	TargetLang string `json:"target_lang" binding:"required" example:"vi"`
	// Quality selects the model tier: draft, standard, or premium.
	Quality string `json:"quality,omitempty" example:"standard"`
} // @name BatchTranslateRequest

// SpeakRequest represents the JSON request body for the speech endpoint.
//
// @Description Request to synthesize speech from text
// @Example {"text": "xin chào", "voice": "alloy", "mode": "auto"}
type SpeakRequest struct {
	// Text is the text to synthesize.
	Text string `json:"text" binding:"required" example:"xin chào"`
	// Voice is the voice name; provider-specific, defaults apply when empty.
	Voice string `json:"voice,omitempty" example:"alloy"`
	// Mode selects the provider chain entry: auto, primary, or secondary.
	Mode string `json:"mode,omitempty" example:"auto"`
	// Format is the audio format; only mp3 and wav are accepted.
	Format string `json:"format,omitempty" example:"mp3"`
} // @name SpeakRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrEmptyText is returned when the input text is empty.
	ErrEmptyText = &ValidationError{Field: "text", Message: "must not be empty"}
	// ErrTextTooLong is returned when the input text exceeds the limit.
	ErrTextTooLong = &ValidationError{Field: "text", Message: "exceeds maximum length"}
	// ErrMissingTargetLang is returned when no target language is given.
	ErrMissingTargetLang = &ValidationError{Field: "target_lang", Message: "is required"}
	// ErrInvalidMode is returned for an unknown speech mode.
	ErrInvalidMode = &ValidationError{Field: "mode", Message: "must be auto, primary, or secondary"}
	// ErrInvalidFormat is returned for an unsupported audio format.
	ErrInvalidFormat = &ValidationError{Field: "format", Message: "must be mp3 or wav"}
	// ErrEmptyBatch is returned when the batch contains no texts.
	ErrEmptyBatch = &ValidationError{Field: "texts", Message: "must contain at least one text"}
)

// Validate performs custom validation on the translate request.
func (r *TranslateRequest) Validate(maxTextLen int) error {
	if strings.TrimSpace(r.Text) == "" {
		return ErrEmptyText
	}
	if maxTextLen > 0 && utf8.RuneCountInString(r.Text) > maxTextLen {
		return ErrTextTooLong
	}
	if strings.TrimSpace(r.TargetLang) == "" {
		return ErrMissingTargetLang
	}
	return nil
}

// Validate performs custom validation on the batch request.
func (r *BatchTranslateRequest) Validate(maxTextLen int) error {
	if len(r.Texts) == 0 {
		return ErrEmptyBatch
	}
	if strings.TrimSpace(r.TargetLang) == "" {
		return ErrMissingTargetLang
	}
	for _, text := range r.Texts {
		single := TranslateRequest{Text: text, TargetLang: r.TargetLang}
		if err := single.Validate(maxTextLen); err != nil {
			return err
		}
	}
	return nil
}

// Validate performs custom validation on the speak request.
func (r *SpeakRequest) Validate(maxTextLen int) error {
	if strings.TrimSpace(r.Text) == "" {
		return ErrEmptyText
	}
	if maxTextLen > 0 && utf8.RuneCountInString(r.Text) > maxTextLen {
		return ErrTextTooLong
	}
	if r.Mode != "" && r.Mode != "auto" && r.Mode != "primary" && r.Mode != "secondary" {
		return ErrInvalidMode
	}
	if r.Format != "" && r.Format != "mp3" && r.Format != "wav" {
		return ErrInvalidFormat
	}
	return nil
}
