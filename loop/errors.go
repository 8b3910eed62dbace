package loop

import "errors"

var (
	// ErrClosed is returned when posting to a closed queue.
	ErrClosed = errors.New("loop: queue is closed")

	// ErrRunning is returned when Run is called on a queue that is already running.
	ErrRunning = errors.New("loop: queue is already running")

	// ErrNilTask is returned when a nil task is posted.
	ErrNilTask = errors.New("loop: task cannot be nil")
)
