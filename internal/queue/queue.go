// Package queue coalesces submitted work into fixed-size batches that
// run concurrently, with a pause between consecutive batches to smooth
// load on upstream providers.
package queue

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/glotta/translate-service/internal/metrics"
)

const (
	defaultBatchSize = 5
	defaultPause     = 200 * time.Millisecond
)

// Task is a unit of work executed by the queue.
type Task func(ctx context.Context) error

type pendingTask struct {
	ctx  context.Context
	run  Task
	done chan error
}

// Queue accumulates tasks and drains them in batches. A single pump
// goroutine is started lazily on the first submission and exits once
// the queue is empty; later submissions start a fresh one.
type Queue struct {
	batchSize int
	pause     time.Duration

	mu      sync.Mutex
	pending []*pendingTask
	pumping bool
}

// New returns a Queue with the given batch size and inter-batch pause.
// Non-positive values fall back to the defaults.
func New(batchSize int, pause time.Duration) *Queue {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	if pause < 0 {
		pause = defaultPause
	}
	return &Queue{
		batchSize: batchSize,
		pause:     pause,
	}
}

// Submit enqueues run and blocks until it has executed or ctx is
// cancelled. A cancelled ctx abandons the wait but does not cancel
// work already dispatched.
func (q *Queue) Submit(ctx context.Context, run Task) error {
	t := &pendingTask{
		ctx:  ctx,
		run:  run,
		done: make(chan error, 1),
	}

	q.mu.Lock()
	q.pending = append(q.pending, t)
	metrics.BatchQueueDepth.Set(float64(len(q.pending)))
	start := !q.pumping
	if start {
		q.pumping = true
	}
	q.mu.Unlock()

	if start {
		go q.pump()
	}

	select {
	case err := <-t.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Len reports the number of tasks waiting for dispatch.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

func (q *Queue) pump() {
	for {
		q.mu.Lock()
		if len(q.pending) == 0 {
			q.pumping = false
			metrics.BatchQueueDepth.Set(0)
			q.mu.Unlock()
			return
		}

		n := q.batchSize
		if n > len(q.pending) {
			n = len(q.pending)
		}
		batch := q.pending[:n]
		q.pending = q.pending[n:]
		metrics.BatchQueueDepth.Set(float64(len(q.pending)))
		more := len(q.pending) > 0
		q.mu.Unlock()

		var wg sync.WaitGroup
		for _, t := range batch {
			wg.Add(1)
			go func(t *pendingTask) {
				defer wg.Done()
				t.done <- runTask(t)
			}(t)
		}
		wg.Wait()

		if more && q.pause > 0 {
			time.Sleep(q.pause)
		}
	}
}

// runTask isolates panics so one failing task cannot take down the
// pump or its batch siblings.
func runTask(t *pendingTask) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()
	if err := t.ctx.Err(); err != nil {
		return err
	}
	return t.run(t.ctx)
}
