package middleware

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/delaneyj/reactor/reactor"
)

// Only wraps mw so it is called for events of the same kinds as the given
// examples and skipped for everything else.
func Only[S any](mw reactor.Middleware[S], kinds ...reactor.Event) reactor.Middleware[S] {
	names := mapset.NewSet[string]()
	for _, k := range kinds {
		names.Add(Kind(k))
	}
	return reactor.MiddlewareFunc[S](func(e reactor.Event, state S) {
		if names.Contains(Kind(e)) {
			mw.Handle(e, state)
		}
	})
}
