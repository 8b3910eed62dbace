package reactor

import (
	"fmt"
	"time"
)

// Event is an intent that a State knows how to apply.
// Any type becomes an Event by embedding Marker.
type Event interface {
	isEvent()
}

// Marker tags the embedding type as an Event.
type Marker struct{}

func (Marker) isEvent() {}

// Emitter derives an event from the current state. Returning nil performs
// nothing. The reactor reference lets an emitter come back later, e.g. after
// some external work has finished.
type Emitter[S any] func(state S, r *Reactor[S]) Event

// After returns an Emitter that performs e once d has elapsed. The perform is
// posted to the reactor's executor, which must be a Loop so it runs on the
// owner goroutine. Emitting it on a reactor with any other executor, like the
// default loop.Serial, panics with ErrNoLoop.
func After[S any](d time.Duration, e Event) Emitter[S] {
	return func(_ S, r *Reactor[S]) Event {
		if _, ok := r.executor.(Loop); !ok {
			panic(fmt.Errorf("%w: executor is %T", ErrNoLoop, r.executor))
		}
		time.AfterFunc(d, func() {
			r.Post(func() { r.Perform(e) })
		})
		return nil
	}
}
