package reactor

import (
	"slices"
	"sync"
	"sync/atomic"
	"weak"

	mapset "github.com/deckarep/golang-set/v2"
)

// Subscriber receives the state after every change. Update runs on the
// reactor's executor, never inside Perform.
type Subscriber[S any] interface {
	Update(state S)
}

// SubscriberPtr is satisfied by *T when it implements Subscriber[S]. T must
// not be a zero-sized type, since all zero-sized values may share an address.
type SubscriberPtr[T, S any] interface {
	*T
	Subscriber[S]
}

// receiver is the type-erased, weakly held side of a subscriber.
type receiver interface {
	key() any
	alive() bool
	update(v any)
}

type weakSubscriber[V, T any, P SubscriberPtr[T, V]] struct {
	ptr weak.Pointer[T]
}

func newWeakSubscriber[V, T any, P SubscriberPtr[T, V]](sub P) *weakSubscriber[V, T, P] {
	return &weakSubscriber[V, T, P]{ptr: weak.Make((*T)(sub))}
}

func (w *weakSubscriber[V, T, P]) key() any {
	return w.ptr
}

func (w *weakSubscriber[V, T, P]) alive() bool {
	return w.ptr.Value() != nil
}

// update drops v when it is not a V or the subscriber has been collected.
func (w *weakSubscriber[V, T, P]) update(v any) {
	value, ok := v.(V)
	if !ok {
		return
	}
	t := w.ptr.Value()
	if t == nil {
		return
	}
	P(t).Update(value)
}

type subscription[S any] struct {
	recv     receiver
	selector func(S) any
	removed  atomic.Bool
}

func (s *subscription[S]) deliver(state S) {
	if s.removed.Load() {
		return
	}
	var v any = state
	if s.selector != nil {
		v = s.selector(state)
	}
	s.recv.update(v)
}

type registry[S any] struct {
	mu   sync.Mutex
	subs []*subscription[S]
	keys mapset.Set[any]
}

func newRegistry[S any]() *registry[S] {
	return &registry[S]{
		keys: mapset.NewThreadUnsafeSet[any](),
	}
}

func (r *registry[S]) add(sub *subscription[S]) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.keys.Add(sub.recv.key()) {
		return false
	}
	r.subs = append(r.subs, sub)
	return true
}

func (r *registry[S]) remove(key any) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.keys.Contains(key) {
		return false
	}
	r.keys.Remove(key)
	r.subs = slices.DeleteFunc(r.subs, func(s *subscription[S]) bool {
		if s.recv.key() == key {
			s.removed.Store(true)
			return true
		}
		return false
	})
	return true
}

// live prunes collected subscribers and returns a snapshot of the rest.
func (r *registry[S]) live() []*subscription[S] {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.subs = slices.DeleteFunc(r.subs, func(s *subscription[S]) bool {
		if s.recv.alive() {
			return false
		}
		r.keys.Remove(s.recv.key())
		return true
	})
	return slices.Clone(r.subs)
}

func (r *registry[S]) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}

// Add registers sub with r and hands it the current state right away, on the
// calling goroutine. Adding a subscriber that is already registered does
// nothing. Add reports whether a new subscription was created.
func Add[S, T any, P SubscriberPtr[T, S]](r *Reactor[S], sub P) bool {
	if (*T)(sub) == nil {
		return false
	}
	return r.subscribe(&subscription[S]{
		recv: newWeakSubscriber[S, T, P](sub),
	})
}

// Select registers sub with r like Add, except sub receives selector(state)
// instead of the full state, both on registration and after every change.
func Select[S, V, T any, P SubscriberPtr[T, V]](r *Reactor[S], sub P, selector func(S) V) bool {
	if (*T)(sub) == nil {
		return false
	}
	s := &subscription[S]{
		recv: newWeakSubscriber[V, T, P](sub),
	}
	if selector != nil {
		s.selector = func(state S) any { return selector(state) }
	}
	return r.subscribe(s)
}

// Remove drops every subscription of sub. Batches that are already queued
// but have not run yet skip it too. Removing an unknown subscriber is a no-op.
func Remove[S, T any](r *Reactor[S], sub *T) bool {
	if sub == nil {
		return false
	}
	return r.subs.remove(weak.Make(sub))
}
