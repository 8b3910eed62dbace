package reactor

// Executor runs notification batches in the order they were posted, one at a
// time, outside of the call that posted them. loop.Queue and loop.Serial are
// the stock implementations.
type Executor interface {
	Post(task func())
}

// Loop is an Executor whose tasks run on the goroutine that owns the reactor,
// e.g. a loop.Queue driven by Run on that goroutine. Deferred performs need one.
type Loop interface {
	Executor
	InLoop() bool
}

type options struct {
	executor   Executor
	ownerCheck bool
}

// Option configures a Reactor.
type Option func(*options)

// WithExecutor sets where subscriber notifications run. Without it a reactor
// uses its own loop.Serial.
func WithExecutor(ex Executor) Option {
	return func(o *options) {
		if ex != nil {
			o.executor = ex
		}
	}
}

// WithOwnerCheck makes Perform and Emit panic with ErrWrongGoroutine when
// called from a goroutine other than the one that called New.
func WithOwnerCheck() Option {
	return func(o *options) {
		o.ownerCheck = true
	}
}
