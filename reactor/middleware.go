package reactor

// Middleware observes every performed event together with the state it
// produced. It gets a copy of the state and cannot change the reactor's.
type Middleware[S any] interface {
	Handle(e Event, state S)
}

// MiddlewareFunc adapts a plain function to Middleware.
type MiddlewareFunc[S any] func(e Event, state S)

func (f MiddlewareFunc[S]) Handle(e Event, state S) {
	f(e, state)
}

// handler is the type-erased side of a middleware.
type handler interface {
	handle(e Event, state any)
}

type middlewareAdapter[S any] struct {
	mw Middleware[S]
}

// handle drops the call when state is not an S.
func (a middlewareAdapter[S]) handle(e Event, state any) {
	s, ok := state.(S)
	if !ok {
		return
	}
	a.mw.Handle(e, s)
}

func adaptMiddleware[S any](mws []Middleware[S]) []handler {
	handlers := make([]handler, 0, len(mws))
	for _, mw := range mws {
		if mw == nil {
			continue
		}
		handlers = append(handlers, middlewareAdapter[S]{mw: mw})
	}
	return handlers
}
