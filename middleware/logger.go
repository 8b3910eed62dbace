package middleware

import (
	"log"

	"github.com/delaneyj/reactor/reactor"
)

// Logger logs every event with the state it produced.
type Logger[S any] struct {
	logger *log.Logger
}

// NewLogger returns a Logger writing to l, or to the standard logger when l is nil.
func NewLogger[S any](l *log.Logger) *Logger[S] {
	if l == nil {
		l = log.Default()
	}
	return &Logger[S]{logger: l}
}

func (l *Logger[S]) Handle(e reactor.Event, state S) {
	l.logger.Printf("%s %+v -> %+v", Kind(e), e, state)
}
