// Package statemachine implements a small finite state machine over
// string-backed state and event types.
//
// States and events are any types whose underlying type is string, so a
// package can declare its own closed sets:
//
//	type State string
//	type Event string
//
//	const (
//	    Editing    State = "editing"
//	    Validating State = "validating"
//	    Generate   Event = "generate"
//	)
//
//	m := statemachine.MustNew(Editing,
//	    statemachine.WithTransition(Editing, Validating, Generate),
//	)
//	_ = m.Fire(ctx, Generate, nil)
//
// # Guards and Actions
//
// Guards veto a transition based on runtime data; when several transitions
// share a source state and event, the first whose guards all pass is taken.
// Actions run after guards and before the state changes; an action error
// aborts the transition and leaves the current state untouched.
//
// # Errors
//
// Fire returns a *TransitionError when the state did not change. It matches
// ErrNoTransition when nothing is defined for the current state and event,
// and ErrRejected when guards blocked every candidate.
//
// Access to the current state and the transition table is guarded by a
// RWMutex, so a Machine may be shared between goroutines.
package statemachine
