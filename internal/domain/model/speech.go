// Package model provides domain models for the translate service.
package model

// SpeechMode controls how the speech provider chain selects a backend.
type SpeechMode string

const (
	// SpeechModeAuto selects by input length: short utterances go to the
	// low-latency primary, long ones to the higher-throughput secondary.
	SpeechModeAuto SpeechMode = "auto"
	// SpeechModePrimary forces the primary provider.
	SpeechModePrimary SpeechMode = "primary"
	// SpeechModeSecondary forces the secondary provider.
	SpeechModeSecondary SpeechMode = "secondary"
)

// Valid reports whether the mode is one of the known values.
func (m SpeechMode) Valid() bool {
	switch m {
	case SpeechModeAuto, SpeechModePrimary, SpeechModeSecondary:
		return true
	}
	return false
}

// SpeechResult represents synthesized audio.
type SpeechResult struct {
	// Audio is the opaque binary payload. Always non-empty on success.
	Audio []byte `json:"-"`
	// Provider is the backend that actually served the call.
	Provider string `json:"provider" example:"openai"`
	// Format is the audio container format.
	Format string `json:"format" example:"mp3"`
	// Cached indicates the audio was served from the process cache.
	Cached bool `json:"cached"`
}

// Size returns the payload length in bytes.
func (r SpeechResult) Size() int {
	return len(r.Audio)
}
