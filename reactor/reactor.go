package reactor

import (
	"fmt"
	"sync"

	"github.com/delaneyj/reactor/loop"
	"github.com/petermattis/goid"
)

// Reactor owns a state value of type S and is the only thing that mutates it.
type Reactor[S any] struct {
	mu     sync.RWMutex
	state  S
	handle func(state *S, e Event)

	middleware []handler
	subs       *registry[S]
	executor   Executor

	// goroutine id allowed to drive the reactor, 0 when unchecked
	owner int64
}

// New creates a reactor holding initial. Middleware is called in slice order
// after every performed event.
func New[S any, P StatePtr[S]](initial S, middleware []Middleware[S], opts ...Option) *Reactor[S] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.executor == nil {
		o.executor = loop.NewSerial()
	}

	r := &Reactor[S]{
		state: initial,
		handle: func(state *S, e Event) {
			P(state).Handle(e)
		},
		middleware: adaptMiddleware(middleware),
		subs:       newRegistry[S](),
		executor:   o.executor,
	}
	if o.ownerCheck {
		r.owner = goid.Get()
	}
	return r
}

// State returns a copy of the current state.
func (r *Reactor[S]) State() S {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// Len returns the number of registered subscriptions, including ones whose
// subscriber was collected since the last change.
func (r *Reactor[S]) Len() int {
	return r.subs.len()
}

// Perform applies e to the state, queues a notification batch for the
// subscribers and runs every middleware with the result. The batch is queued
// before middleware runs, so a Perform issued from a middleware notifies after
// this one. A panic in the state's Handle reaches the caller and nothing is
// notified. A nil event is ignored.
func (r *Reactor[S]) Perform(e Event) {
	if e == nil {
		return
	}
	r.checkOwner()

	state := r.apply(e)
	r.notify(state)

	boxed := any(state)
	for _, h := range r.middleware {
		h.handle(e, boxed)
	}
}

// Emit calls fn with the current state and performs the event it returns, if
// any.
func (r *Reactor[S]) Emit(fn Emitter[S]) {
	if fn == nil {
		return
	}
	r.checkOwner()

	if e := fn(r.State(), r); e != nil {
		r.Perform(e)
	}
}

// Post runs task on the reactor's executor, behind any pending notification
// batches.
func (r *Reactor[S]) Post(task func()) {
	r.executor.Post(task)
}

func (r *Reactor[S]) apply(e Event) S {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.handle(&r.state, e)
	return r.state
}

func (r *Reactor[S]) notify(state S) {
	batch := r.subs.live()
	if len(batch) == 0 {
		return
	}
	r.executor.Post(func() {
		for _, sub := range batch {
			sub.deliver(state)
		}
	})
}

func (r *Reactor[S]) subscribe(sub *subscription[S]) bool {
	if !r.subs.add(sub) {
		return false
	}
	sub.deliver(r.State())
	return true
}

func (r *Reactor[S]) checkOwner() {
	if r.owner == 0 {
		return
	}
	if id := goid.Get(); id != r.owner {
		panic(fmt.Errorf("%w: called from goroutine %d, owner is %d", ErrWrongGoroutine, id, r.owner))
	}
}
