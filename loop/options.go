package loop

import (
	"log"
	"runtime/debug"
)

// PanicHandler is called with the recovered value and stack of a task that
// panicked. The executor moves on to the next task afterwards.
type PanicHandler func(recovered any, stack []byte)

type config struct {
	onPanic PanicHandler
}

// Option configures a Queue or a Serial.
type Option func(*config)

// WithPanicHandler replaces the default handler, which logs the panic.
func WithPanicHandler(h PanicHandler) Option {
	return func(c *config) {
		if h != nil {
			c.onPanic = h
		}
	}
}

func newConfig(opts []Option) config {
	c := config{
		onPanic: logPanic,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func logPanic(recovered any, stack []byte) {
	log.Printf("loop: task panicked: %v\n%s", recovered, stack)
}

func runTask(task func(), onPanic PanicHandler) {
	defer func() {
		if r := recover(); r != nil {
			onPanic(r, debug.Stack())
		}
	}()
	task()
}
