package loop

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/petermattis/goid"
)

// Queue is an unbounded FIFO of tasks consumed by a single goroutine.
type Queue struct {
	mu     sync.Mutex
	tasks  []func()
	closed bool
	wake   chan struct{}

	// goroutine id inside Run, 0 when not running
	owner atomic.Int64

	cfg config
}

// NewQueue returns an open, empty queue.
func NewQueue(opts ...Option) *Queue {
	return &Queue{
		wake: make(chan struct{}, 1),
		cfg:  newConfig(opts),
	}
}

// Post appends task to the queue. It never blocks. Tasks posted after Close
// are dropped.
func (q *Queue) Post(task func()) {
	_ = q.TryPost(task)
}

// TryPost is Post that reports why a task was not queued.
func (q *Queue) TryPost(task func()) error {
	if task == nil {
		return ErrNilTask
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrClosed
	}
	q.tasks = append(q.tasks, task)
	q.mu.Unlock()

	q.signal()
	return nil
}

// Run consumes tasks on the calling goroutine until ctx is done or the queue
// is closed and empty. It returns nil after Close, ctx.Err() otherwise.
func (q *Queue) Run(ctx context.Context) error {
	if !q.owner.CompareAndSwap(0, goid.Get()) {
		return ErrRunning
	}
	defer q.owner.Store(0)

	for {
		q.Drain()

		q.mu.Lock()
		done := q.closed && len(q.tasks) == 0
		q.mu.Unlock()
		if done {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-q.wake:
		}
	}
}

// Drain runs every pending task on the calling goroutine, including tasks
// posted while draining, and returns how many ran. It must not race with Run
// or another Drain.
func (q *Queue) Drain() int {
	n := 0
	for {
		q.mu.Lock()
		batch := q.tasks
		q.tasks = nil
		q.mu.Unlock()

		if len(batch) == 0 {
			return n
		}
		for _, task := range batch {
			runTask(task, q.cfg.onPanic)
			n++
		}
	}
}

// Close stops accepting tasks. Run finishes the tasks already queued and
// returns.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	q.signal()
}

// Len returns the number of pending tasks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// InLoop reports whether the caller is the goroutine currently inside Run.
func (q *Queue) InLoop() bool {
	return q.owner.Load() == goid.Get()
}

func (q *Queue) signal() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}
