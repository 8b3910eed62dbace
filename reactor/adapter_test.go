package reactor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type level struct {
	n int
}

type ping struct{ Marker }

type levelView struct {
	got []level
}

func (v *levelView) Update(l level) {
	v.got = append(v.got, l)
}

func TestMiddlewareAdapterTypeMismatch(t *testing.T) {
	calls := 0
	h := middlewareAdapter[level]{mw: MiddlewareFunc[level](func(Event, level) {
		calls++
	})}

	h.handle(ping{}, "not a level")
	h.handle(ping{}, &level{n: 1})
	assert.Equal(t, 0, calls)

	h.handle(ping{}, level{n: 1})
	assert.Equal(t, 1, calls)
}

func TestWeakSubscriberTypeMismatch(t *testing.T) {
	view := &levelView{}
	w := newWeakSubscriber[level](view)

	w.update(42)
	assert.Empty(t, view.got)

	w.update(level{n: 2})
	assert.Equal(t, []level{{n: 2}}, view.got)
	assert.True(t, w.alive())
}

func TestWeakSubscriberKeyIsIdentity(t *testing.T) {
	a, b := &levelView{}, &levelView{}

	assert.Equal(t, newWeakSubscriber[level](a).key(), newWeakSubscriber[level](a).key())
	assert.NotEqual(t, newWeakSubscriber[level](a).key(), newWeakSubscriber[level](b).key())
}

func TestRegistryKeepsLiveSubscribers(t *testing.T) {
	reg := newRegistry[level]()
	view := &levelView{}

	assert.True(t, reg.add(&subscription[level]{recv: newWeakSubscriber[level](view)}))
	assert.Len(t, reg.live(), 1)
	assert.Equal(t, 1, reg.len())
}
