package service

import (
	"errors"
	"net/http"

	"github.com/glotta/translate-service/internal/domain/dto"
)

// ErrorKind classifies a service failure for HTTP mapping and logging.
type ErrorKind string

const (
	// KindInvalidInput marks requests rejected before reaching a provider.
	KindInvalidInput ErrorKind = "invalid_input"
	// KindConfig marks failures caused by missing or broken configuration,
	// such as an absent provider credential.
	KindConfig ErrorKind = "config_error"
	// KindProviderFailure marks an upstream call that failed after retries.
	KindProviderFailure ErrorKind = "provider_failure"
	// KindFallbackExhausted marks a request no provider in the chain could serve.
	KindFallbackExhausted ErrorKind = "fallback_exhausted"
)

// AppError carries a classified service failure up to the HTTP layer.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error kind to a response status code.
func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindConfig:
		return http.StatusInternalServerError
	case KindProviderFailure:
		return http.StatusBadGateway
	case KindFallbackExhausted:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Code maps the error kind to the wire-level error code.
func (e *AppError) Code() string {
	switch e.Kind {
	case KindInvalidInput:
		return dto.ErrCodeInvalidRequest
	case KindConfig:
		return dto.ErrCodeConfiguration
	case KindProviderFailure:
		return dto.ErrCodeProviderFailure
	case KindFallbackExhausted:
		return dto.ErrCodeFallbackExhausted
	default:
		return dto.ErrCodeInternal
	}
}

func invalidInput(err error) *AppError {
	return &AppError{Kind: KindInvalidInput, Message: "invalid request", Err: err}
}

func configError(err error) *AppError {
	return &AppError{Kind: KindConfig, Message: "service misconfigured", Err: err}
}

func providerFailure(err error) *AppError {
	return &AppError{Kind: KindProviderFailure, Message: "provider request failed", Err: err}
}

func fallbackExhausted(err error) *AppError {
	return &AppError{Kind: KindFallbackExhausted, Message: "all providers unavailable", Err: err}
}

// AsAppError extracts an AppError from err's chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
