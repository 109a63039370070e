package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// TranslationKey derives a deterministic cache key from the fields that affect
// translation output. Two logically identical requests always produce the same
// key; any field that changes the output is part of the hash.
func TranslationKey(text, targetLang, quality, context string) string {
	return hashFields("translate", normalizeText(text), normalizeLang(targetLang), quality, context)
}

// SpeechKey derives a deterministic cache key for a synthesis request.
func SpeechKey(text, voice, mode, format string) string {
	return hashFields("speak", normalizeText(text), voice, mode, format)
}

// ContentHash derives the shared durable cache key. Only uncontextualized
// request fields participate: the durable cache is shared across users, so a
// per-user context must never influence the key (such requests bypass the
// cache entirely).
func ContentHash(text, targetLang, quality string) string {
	return hashFields("content", normalizeText(text), normalizeLang(targetLang), quality)
}

// hashFields hashes fields with a separator that cannot occur inside a field
// boundary ambiguity (length-prefixing via the NUL byte).
func hashFields(fields ...string) string {
	h := sha256.New()
	for _, f := range fields {
		h.Write([]byte(f))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

func normalizeText(s string) string {
	return strings.TrimSpace(s)
}

func normalizeLang(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
