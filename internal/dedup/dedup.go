// Package dedup collapses concurrent identical requests into a single
// underlying call. All callers that join an in-flight key share its outcome,
// success or failure; the key is forgotten once the call settles so a later
// request starts fresh. Cancellation is deliberately unsupported: joined
// callers depend on the shared call, so no caller may abort it unilaterally.
package dedup

import (
	"context"

	"golang.org/x/sync/singleflight"

	"github.com/glotta/translate-service/internal/metrics"
)

// Group deduplicates in-flight operations by key.
type Group[V any] struct {
	sf singleflight.Group
}

// NewGroup creates a deduplication group.
func NewGroup[V any]() *Group[V] {
	return &Group[V]{}
}

// Do executes op for key, guaranteeing at most one concurrent execution per
// key. Concurrent callers with the same key block until the first call
// settles and receive its result. The context passed to op belongs to the
// first caller; the operation runs to completion even if joiners go away.
func (g *Group[V]) Do(ctx context.Context, key string, op func(ctx context.Context) (V, error)) (V, error) {
	result, err, shared := g.sf.Do(key, func() (interface{}, error) {
		return op(ctx)
	})
	if shared {
		metrics.InflightJoinsTotal.Inc()
	}
	if err != nil {
		var zero V
		return zero, err
	}
	v, _ := result.(V)
	return v, nil
}

// Forget drops the in-flight entry for key, if any. A subsequent Do for the
// same key starts a new call instead of joining. Primarily useful when a
// caller knows the pending result is already unusable.
func (g *Group[V]) Forget(key string) {
	g.sf.Forget(key)
}
