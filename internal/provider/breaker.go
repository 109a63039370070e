package provider

import (
	"errors"
	"time"

	"github.com/sony/gobreaker"

	"github.com/glotta/translate-service/internal/logger"
)

// ErrBreakerOpen reports that a provider's circuit is open and the
// call was refused without reaching the backend.
var ErrBreakerOpen = gobreaker.ErrOpenState

// Breaker guards one provider with a circuit breaker. The fallback
// chain checks State to skip providers whose circuit is open.
type Breaker struct {
	name string
	cb   *gobreaker.CircuitBreaker
}

// NewBreaker returns a breaker that opens after five consecutive
// failures and probes again after thirty seconds.
func NewBreaker(name string) *Breaker {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Logger().Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
		},
	}
	return &Breaker{
		name: name,
		cb:   gobreaker.NewCircuitBreaker(settings),
	}
}

func (b *Breaker) Name() string {
	return b.name
}

// State reports the current circuit state as a string, for readiness
// reporting.
func (b *Breaker) State() string {
	return b.cb.State().String()
}

// Open reports whether the circuit currently refuses calls.
func (b *Breaker) Open() bool {
	return b.cb.State() == gobreaker.StateOpen
}

// Guard runs fn through b's circuit. An open circuit returns
// ErrBreakerOpen without invoking fn.
func Guard[V any](b *Breaker, fn func() (V, error)) (V, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return fn()
	})
	if err != nil {
		var zero V
		return zero, err
	}
	v, _ := result.(V)
	return v, nil
}

// IsBreakerOpen reports whether err came from an open or half-open
// circuit refusing the call.
func IsBreakerOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
