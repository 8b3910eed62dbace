// Package reactor is a small unidirectional state container.
//
// A Reactor owns a single state value. The only way to change it is to
// Perform an Event, which the state applies to itself in place. After every
// mutation the reactor calls each Middleware synchronously with the event and
// the new state, then posts one notification batch to its Executor that hands
// the new state to every live Subscriber.
//
//	type Counter struct{ Count int }
//	type Increment struct{ reactor.Marker }
//
//	func (c *Counter) Handle(e reactor.Event) {
//		switch e.(type) {
//		case Increment:
//			c.Count++
//		}
//	}
//
//	r := reactor.New(Counter{}, nil, reactor.WithExecutor(queue))
//	reactor.Add(r, view) // view receives Counter{0} right away
//	r.Perform(Increment{})
//
// Subscribers are held weakly: registering one never keeps it alive. Dead
// subscriptions are dropped the next time the state changes.
//
// A Reactor is meant to be driven from one goroutine. Perform, Emit, Add and
// Remove must not be called concurrently with each other.
package reactor
