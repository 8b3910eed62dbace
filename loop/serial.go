package loop

import (
	"context"
	"sync"
)

// Serial runs posted tasks one after another on a background goroutine. The
// goroutine is started when work arrives and exits once the queue is empty.
type Serial struct {
	mu      sync.Mutex
	tasks   []func()
	running bool
	idle    chan struct{}

	cfg config
}

// NewSerial returns an idle Serial with no goroutine running.
func NewSerial(opts ...Option) *Serial {
	idle := make(chan struct{})
	close(idle)
	return &Serial{
		idle: idle,
		cfg:  newConfig(opts),
	}
}

// Post queues task, starting the consumer goroutine if it is not running.
func (s *Serial) Post(task func()) {
	if task == nil {
		return
	}

	s.mu.Lock()
	s.tasks = append(s.tasks, task)
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.idle = make(chan struct{})
	s.mu.Unlock()

	go s.consume()
}

// Wait blocks until no task is pending or running, or ctx is done.
func (s *Serial) Wait(ctx context.Context) error {
	for {
		s.mu.Lock()
		running, idle := s.running, s.idle
		s.mu.Unlock()

		if !running {
			return nil
		}
		select {
		case <-idle:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Serial) consume() {
	for {
		s.mu.Lock()
		batch := s.tasks
		s.tasks = nil
		if len(batch) == 0 {
			s.running = false
			close(s.idle)
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		for _, task := range batch {
			runTask(task, s.cfg.onPanic)
		}
	}
}
