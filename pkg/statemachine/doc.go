// Package statemachine provides a small, generic implementation of the
// finite-state-machine (FSM) pattern.
//
// A Machine is parameterised by two comparable types, one for states and one
// for events, so domain packages can use their own string or integer enums
// directly. The package handles:
//  1. Transition lookup by current state and event
//  2. Guard evaluation to accept or reject a transition
//  3. Actions executed before the state changes
//  4. Effects that resolve the settled state at run time
//  5. Hooks observing every committed change
//
// # Usage
//
//	type state string
//	type event string
//
//	m := statemachine.MustNew[state, event]("draft",
//	    statemachine.WithTransition[state, event]("draft", "in_review", "submit"),
//	)
//
//	_ = m.Fire(context.Background(), "submit")
//
// # Guards, Actions and Effects
//
// Guards veto a transition. When several transitions are registered for the
// same state and event, the first one whose guards all pass is taken.
//
// Actions run after the guards and before the state is updated; an error
// aborts the transition.
//
// An Effect replaces the declared target with a state computed while the
// transition runs. Use it when a collaborator decides the outcome, for
// example a lock reporting whether it actually engaged.
//
// # Error Handling
//
//	if statemachine.IsNoTransitionAvailableError(err) { /* ... */ }
//	if statemachine.IsTransitionRejectedError(err)   { /* ... */ }
//	if errors.Is(err, statemachine.ErrActionFailed)  { /* ... */ }
//
// # Concurrency
//
// Machine performs no locking. Callers sharing a machine between goroutines
// must synchronise access themselves.
package statemachine
