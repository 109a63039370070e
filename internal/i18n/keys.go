// Package i18n provides internationalization support for the translate service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyProviderFailure indicates the upstream provider failed.
	ErrKeyProviderFailure = "error.provider_failure"
	// ErrKeyFallbackExhausted indicates no provider could serve the request.
	ErrKeyFallbackExhausted = "error.fallback_exhausted"
	// ErrKeyConfiguration indicates missing provider configuration.
	ErrKeyConfiguration = "error.config_error"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
)

// Success message translation keys.
const (
	// SuccessKeyTranslated indicates a completed translation.
	SuccessKeyTranslated = "success.translated"
	// SuccessKeySpeechSynthesized indicates completed speech synthesis.
	SuccessKeySpeechSynthesized = "success.speech_synthesized"
)
