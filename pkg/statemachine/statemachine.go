package statemachine

import (
	"context"
	"fmt"
)

// Guard evaluates whether a transition should be allowed based on runtime conditions.
type Guard[S, E comparable] func(ctx context.Context, from S, event E) bool

// Action executes side effects during a transition. Returning an error prevents the transition.
type Action[S, E comparable] func(ctx context.Context, from, to S, event E) error

// Effect resolves the state a transition settles on. It runs after all actions
// and its result replaces the declared target.
type Effect[S, E comparable] func(ctx context.Context, from S, event E) (S, error)

// Hook observes a committed state change.
type Hook[S, E comparable] func(ctx context.Context, from, to S, event E)

// Transition defines a state change triggered by an event, with optional guards and actions.
type Transition[S, E comparable] struct {
	From    S
	To      S
	Event   E
	Guards  []Guard[S, E]  // All must pass for transition to proceed
	Actions []Action[S, E] // Executed in order before state change
	Effect  Effect[S, E]
}

// Machine is an in-memory finite state machine keyed by comparable state and
// event types. Lookups use a nested map: [from][event][]Transition.
//
// Machine is not safe for concurrent use.
type Machine[S, E comparable] struct {
	initial     S
	current     S
	transitions map[S]map[E][]Transition[S, E]
	hooks       []Hook[S, E]
}

func newMachine[S, E comparable](initial S) *Machine[S, E] {
	return &Machine[S, E]{
		initial:     initial,
		current:     initial,
		transitions: make(map[S]map[E][]Transition[S, E]),
	}
}

// Current returns the state the machine is in.
func (m *Machine[S, E]) Current() S {
	return m.current
}

// AddTransition registers a transition. Multiple transitions for the same
// from/event pair are allowed to support guard-based branching.
func (m *Machine[S, E]) AddTransition(t Transition[S, E]) {
	if _, ok := m.transitions[t.From]; !ok {
		m.transitions[t.From] = make(map[E][]Transition[S, E])
	}
	m.transitions[t.From][t.Event] = append(m.transitions[t.From][t.Event], t)
}

// Fire triggers event from the current state.
func (m *Machine[S, E]) Fire(ctx context.Context, event E) error {
	candidates := m.transitions[m.current][event]
	if len(candidates) == 0 {
		return NewErrNoTransitionAvailable(m.current, event)
	}

	t, ok := m.pick(ctx, candidates, event)
	if !ok {
		return NewErrTransitionRejected(m.current, event)
	}

	from := m.current
	for _, action := range t.Actions {
		if err := action(ctx, from, t.To, event); err != nil {
			return fmt.Errorf("%w: %w", ErrActionFailed, err)
		}
	}

	to := t.To
	if t.Effect != nil {
		settled, err := t.Effect(ctx, from, event)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrActionFailed, err)
		}
		to = settled
	}

	m.current = to
	for _, hook := range m.hooks {
		hook(ctx, from, to, event)
	}
	return nil
}

// CanFire reports whether Fire would find a transition whose guards pass.
// Actions and effects are not run.
func (m *Machine[S, E]) CanFire(ctx context.Context, event E) bool {
	_, ok := m.pick(ctx, m.transitions[m.current][event], event)
	return ok
}

// Events lists the events with at least one transition registered from state.
// The order is unspecified and may differ between calls.
func (m *Machine[S, E]) Events(from S) []E {
	byEvent := m.transitions[from]
	events := make([]E, 0, len(byEvent))
	for e := range byEvent {
		events = append(events, e)
	}
	return events
}

// Reset moves the machine back to its initial state without running any hooks.
func (m *Machine[S, E]) Reset() {
	m.current = m.initial
}

// pick returns the first transition whose guards all pass, preserving
// registration order as priority.
func (m *Machine[S, E]) pick(ctx context.Context, candidates []Transition[S, E], event E) (Transition[S, E], bool) {
	for _, t := range candidates {
		allGuardsPassed := true
		for _, guard := range t.Guards {
			if !guard(ctx, m.current, event) {
				allGuardsPassed = false
				break
			}
		}
		if allGuardsPassed {
			return t, true
		}
	}
	return Transition[S, E]{}, false
}
