// Package loop provides a single-threaded cooperative task queue, the
// equivalent of a host message loop. Tasks may be posted from any goroutine
// but always run on the goroutine that drives the queue, one at a time.
package loop

import (
	"context"
	"sync"
)

// Queue is a FIFO of deferred tasks.
type Queue struct {
	mu      sync.Mutex
	tasks   []func()
	wake    chan struct{}
	running bool
}

// New creates an empty queue.
func New() *Queue {
	return &Queue{wake: make(chan struct{}, 1)}
}

// Post appends fn to the queue. It is safe to call from any goroutine,
// including from inside a running task. Nil tasks are ignored.
func (q *Queue) Post(fn func()) {
	if fn == nil {
		return
	}
	q.mu.Lock()
	q.tasks = append(q.tasks, fn)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// Len returns the number of tasks waiting to run.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// RunPending runs one turn: every task that was queued when it was called,
// in posting order. Tasks posted while the turn runs wait for the next turn.
// It returns the number of tasks run.
func (q *Queue) RunPending() int {
	q.mu.Lock()
	if q.running {
		// Reentrant turn from inside a task.
		q.mu.Unlock()
		return 0
	}
	batch := q.tasks
	q.tasks = nil
	q.running = true
	q.mu.Unlock()

	defer func() {
		q.mu.Lock()
		q.running = false
		q.mu.Unlock()
	}()

	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Drain runs turns until the queue is empty or limit turns have run. A
// limit of zero or less means no limit. It returns the number of tasks run.
func (q *Queue) Drain(limit int) int {
	total := 0
	for turns := 0; limit <= 0 || turns < limit; turns++ {
		n := q.RunPending()
		if n == 0 {
			break
		}
		total += n
	}
	return total
}

// Run processes turns as tasks arrive until ctx is cancelled. Tasks still
// queued at cancellation are left in place.
func (q *Queue) Run(ctx context.Context) error {
	for {
		if q.Len() > 0 {
			q.RunPending()
			if ctx.Err() != nil {
				return ctx.Err()
			}
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-q.wake:
			q.RunPending()
		}
	}
}
