package reactor

// State mutates itself in place for every event it receives. Handle must
// accept any event (ignoring the ones it does not know) and must not block.
type State interface {
	Handle(e Event)
}

// StatePtr is satisfied by *S when S's pointer implements State.
type StatePtr[S any] interface {
	*S
	State
}
