package statemachine

import (
	"fmt"
)

// Option configures a machine during construction.
type Option[S, E comparable] func(*Machine[S, E]) error

// TransitionOption configures a single transition.
type TransitionOption[S, E comparable] func(*Transition[S, E])

// TransitionDef defines a transition between states.
type TransitionDef[S, E comparable] struct {
	From    S
	To      S
	Event   E
	Guards  []Guard[S, E]
	Actions []Action[S, E]
	Effect  Effect[S, E]
}

// New creates a machine with the given initial state and options.
func New[S, E comparable](initial S, opts ...Option[S, E]) (*Machine[S, E], error) {
	m := newMachine[S, E](initial)

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// MustNew is like New but panics if any option fails to apply.
func MustNew[S, E comparable](initial S, opts ...Option[S, E]) *Machine[S, E] {
	m, err := New(initial, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create state machine: %v", err))
	}
	return m
}

// WithTransition adds a single transition.
func WithTransition[S, E comparable](from, to S, event E, opts ...TransitionOption[S, E]) Option[S, E] {
	return func(m *Machine[S, E]) error {
		t := Transition[S, E]{From: from, To: to, Event: event}
		for _, opt := range opts {
			opt(&t)
		}
		m.AddTransition(t)
		return nil
	}
}

// WithTransitions adds multiple transitions at once.
func WithTransitions[S, E comparable](defs []TransitionDef[S, E]) Option[S, E] {
	return func(m *Machine[S, E]) error {
		for i, d := range defs {
			if containsNil(d.Guards) {
				return fmt.Errorf("failed to add transition[%d] %v->%v on %v: nil guard", i, d.From, d.To, d.Event)
			}
			m.AddTransition(Transition[S, E]{
				From:    d.From,
				To:      d.To,
				Event:   d.Event,
				Guards:  d.Guards,
				Actions: compact(d.Actions),
				Effect:  d.Effect,
			})
		}
		return nil
	}
}

// OnTransition registers a hook called after every committed state change.
func OnTransition[S, E comparable](hook Hook[S, E]) Option[S, E] {
	return func(m *Machine[S, E]) error {
		if hook != nil {
			m.hooks = append(m.hooks, hook)
		}
		return nil
	}
}

// WithGuard adds a single guard to a transition.
func WithGuard[S, E comparable](guard Guard[S, E]) TransitionOption[S, E] {
	return func(t *Transition[S, E]) {
		if guard != nil {
			t.Guards = append(t.Guards, guard)
		}
	}
}

// WithGuards adds multiple guards to a transition.
func WithGuards[S, E comparable](guards ...Guard[S, E]) TransitionOption[S, E] {
	return func(t *Transition[S, E]) {
		for _, guard := range guards {
			if guard != nil {
				t.Guards = append(t.Guards, guard)
			}
		}
	}
}

// WithAction adds a single action to a transition.
func WithAction[S, E comparable](action Action[S, E]) TransitionOption[S, E] {
	return func(t *Transition[S, E]) {
		if action != nil {
			t.Actions = append(t.Actions, action)
		}
	}
}

// WithEffect sets the effect resolving the transition's settled state.
func WithEffect[S, E comparable](effect Effect[S, E]) TransitionOption[S, E] {
	return func(t *Transition[S, E]) {
		t.Effect = effect
	}
}

func containsNil[S, E comparable](guards []Guard[S, E]) bool {
	for _, g := range guards {
		if g == nil {
			return true
		}
	}
	return false
}

func compact[S, E comparable](actions []Action[S, E]) []Action[S, E] {
	var out []Action[S, E]
	for _, a := range actions {
		if a != nil {
			out = append(out, a)
		}
	}
	return out
}
