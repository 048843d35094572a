package statemachine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition = errors.New("statemachine: transition needs from, to and event")
	ErrInvalidEvent      = errors.New("statemachine: empty event")

	// ErrNoTransition matches a TransitionError for a state/event pair with no
	// transition defined.
	ErrNoTransition = errors.New("statemachine: no transition")
	// ErrRejected matches a TransitionError where guards blocked every candidate.
	ErrRejected = errors.New("statemachine: rejected by guards")
)

// TransitionError reports a Fire call that did not change state.
// Match it with errors.Is against ErrNoTransition or ErrRejected.
type TransitionError struct {
	From     string
	Event    string
	Rejected bool
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %q on %q", e.Unwrap(), e.Event, e.From)
}

func (e *TransitionError) Unwrap() error {
	if e.Rejected {
		return ErrRejected
	}
	return ErrNoTransition
}
