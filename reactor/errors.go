package reactor

import "errors"

var (
	// ErrWrongGoroutine is the panic value used by WithOwnerCheck when a
	// reactor is driven from a goroutine other than the one that built it.
	ErrWrongGoroutine = errors.New("reactor used outside its owner goroutine")

	// ErrNoLoop is the panic value used by After when the reactor's executor
	// does not run tasks on the owner goroutine.
	ErrNoLoop = errors.New("reactor executor is not an owner loop")
)
