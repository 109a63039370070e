// Package model defines the core domain entities for the translate service.
package model

import "strings"

// TranslationResult represents the complete result of a translation request.
//
// @Description Translation result with the translated text, its transliteration, and sentence segments
// @Example {"translation": "xin chào", "transliteration": "신짜오", "segments": ["xin chào"]}
type TranslationResult struct {
	// SourceText is the original text that was translated
	SourceText string `json:"source_text" example:"hello"`
	// TargetLang is the BCP-47 code of the target language
	TargetLang string `json:"target_lang" example:"vi"`
	// Translation is the translated text
	Translation string `json:"translation" example:"xin chào"`
	// Transliteration is a phonetic rendering of the translation, when available
	Transliteration string `json:"transliteration,omitempty" example:"신짜오"`
	// Segments is the translation split into sentences for display
	Segments []string `json:"segments"`
	// Source indicates where the result came from: provider, memory_cache, or durable_cache
	Source string `json:"source,omitempty" example:"provider"`
}

// Result source values.
const (
	SourceProvider     = "provider"
	SourceMemoryCache  = "memory_cache"
	SourceDurableCache = "durable_cache"
)

// SplitSegments splits translated text into sentence-level segments.
// This is a display convenience, not a transport protocol: the translation
// itself is always returned whole.
func SplitSegments(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	var segments []string
	var current strings.Builder
	for _, r := range text {
		current.WriteRune(r)
		switch r {
		case '.', '!', '?', '。', '！', '？':
			if s := strings.TrimSpace(current.String()); s != "" {
				segments = append(segments, s)
			}
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		segments = append(segments, s)
	}
	return segments
}

// WithSegments returns a copy of the result with Segments populated from the
// translation text.
func (r TranslationResult) WithSegments() TranslationResult {
	r.Segments = SplitSegments(r.Translation)
	return r
}
