package door

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/doorkit/pkg/logger"
	"github.com/dmitrymomot/doorkit/pkg/statemachine"
)

// Door has a color and two guarded flags, open and locked. A door is never
// open and locked at the same time: requests whose precondition does not hold
// are ignored and reported as Rejected.
//
// Door is not safe for concurrent use.
type Door struct {
	id    uuid.UUID
	color string
	lock  LockMechanism
	fsm   *statemachine.Machine[State, Operation]
	log   *slog.Logger
}

// Option configures a Door.
type Option func(*Door)

// WithID sets the door identifier. A random UUID is used otherwise.
func WithID(id uuid.UUID) Option {
	return func(d *Door) {
		if id != uuid.Nil {
			d.id = id
		}
	}
}

// WithLogger makes the door log its transitions. Nil loggers are ignored.
// Register LogExtractor on the logger to get the door_id attribute.
func WithLogger(log *slog.Logger) Option {
	return func(d *Door) {
		if log != nil {
			d.log = log
		}
	}
}

// New creates a closed, unlocked door painted color. lock is shared, not
// owned: the caller controls its lifetime and may hand it to other doors.
func New(lock LockMechanism, color string, opts ...Option) (*Door, error) {
	if lock == nil {
		return nil, ErrNilLock
	}

	d := &Door{
		id:    uuid.New(),
		color: color,
		lock:  lock,
		log:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(d)
	}

	fsm, err := statemachine.New(ClosedUnlocked, d.transitions()...)
	if err != nil {
		return nil, fmt.Errorf("door: build state machine: %w", err)
	}
	d.fsm = fsm

	return d, nil
}

// MustNew is like New but panics on error.
func MustNew(lock LockMechanism, color string, opts ...Option) *Door {
	d, err := New(lock, color, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

type (
	guard  = statemachine.Guard[State, Operation]
	effect = statemachine.Effect[State, Operation]
)

func (d *Door) transitions() []statemachine.Option[State, Operation] {
	notLocked := guard(func(_ context.Context, from State, _ Operation) bool { return !from.IsLocked() })
	notOpen := guard(func(_ context.Context, from State, _ Operation) bool { return !from.IsOpen() })
	locked := guard(func(_ context.Context, from State, _ Operation) bool { return from.IsLocked() })

	engage := effect(func(_ context.Context, from State, _ Operation) (State, error) {
		return stateOf(from.IsOpen(), d.lock.Engage()), nil
	})
	release := effect(func(_ context.Context, from State, _ Operation) (State, error) {
		return stateOf(from.IsOpen(), d.lock.Release()), nil
	})

	var defs []statemachine.TransitionDef[State, Operation]
	for _, from := range []State{ClosedUnlocked, Open, ClosedLocked} {
		defs = append(defs,
			statemachine.TransitionDef[State, Operation]{
				From: from, To: stateOf(true, from.IsLocked()), Event: OpOpen,
				Guards: []guard{notLocked},
			},
			statemachine.TransitionDef[State, Operation]{
				From: from, To: stateOf(false, from.IsLocked()), Event: OpClose,
			},
			statemachine.TransitionDef[State, Operation]{
				From: from, To: ClosedLocked, Event: OpLock,
				Guards: []guard{notOpen}, Effect: engage,
			},
			statemachine.TransitionDef[State, Operation]{
				From: from, To: stateOf(from.IsOpen(), false), Event: OpUnlock,
				Guards: []guard{locked}, Effect: release,
			},
		)
	}

	return []statemachine.Option[State, Operation]{
		statemachine.WithTransitions(defs),
		statemachine.OnTransition(func(ctx context.Context, from, to State, op Operation) {
			d.log.DebugContext(ctx, "door transition applied",
				logger.Event(op),
				logger.Transition(from, to),
				logger.Outcome(Applied),
			)
		}),
	}
}

// Apply performs op and reports whether it was applied.
func (d *Door) Apply(op Operation) Outcome {
	return d.ApplyContext(context.Background(), op)
}

// ApplyContext is Apply with a caller context. The door's ID is added to ctx
// (see ContextWithID) before any record is logged.
func (d *Door) ApplyContext(ctx context.Context, op Operation) Outcome {
	ctx = ContextWithID(ctx, d.id)
	from := d.fsm.Current()

	err := d.fsm.Fire(ctx, op)
	if err == nil {
		return Applied
	}

	if statemachine.IsTransitionRejectedError(err) || statemachine.IsNoTransitionAvailableError(err) {
		d.log.DebugContext(ctx, "door transition rejected",
			logger.Event(op),
			logger.Outcome(Rejected),
			slog.String("state", string(from)),
			slog.String("reason", rejectReason(op)),
		)
	} else {
		d.log.ErrorContext(ctx, "door transition failed",
			logger.Event(op),
			logger.Outcome(Rejected),
			logger.Error(err),
		)
	}
	return Rejected
}

// rejectReason names the precondition op failed.
func rejectReason(op Operation) string {
	switch op {
	case OpOpen:
		return "locked"
	case OpLock:
		return "open"
	case OpUnlock:
		return "not_locked"
	default:
		return "unknown_operation"
	}
}

// CanApply reports whether op's precondition currently holds.
func (d *Door) CanApply(op Operation) bool {
	return d.fsm.CanFire(context.Background(), op)
}

// Open opens the door unless it is locked.
func (d *Door) Open() Outcome { return d.Apply(OpOpen) }

// Close closes the door. It always applies.
func (d *Door) Close() Outcome { return d.Apply(OpClose) }

// Lock engages the lock mechanism unless the door is open. The mechanism's
// answer becomes the locked flag.
func (d *Door) Lock() Outcome { return d.Apply(OpLock) }

// Unlock releases the lock mechanism if the door is locked. The mechanism's
// answer becomes the locked flag.
func (d *Door) Unlock() Outcome { return d.Apply(OpUnlock) }

// ID returns the door identifier.
func (d *Door) ID() uuid.UUID { return d.id }

// Color returns the current color label.
func (d *Door) Color() string { return d.color }

// SetColor repaints the door. Any value is accepted as is.
func (d *Door) SetColor(color string) {
	d.color = color
}

// State returns the current combination of the open and locked flags.
func (d *Door) State() State { return d.fsm.Current() }

// IsOpen reports whether the door is open.
func (d *Door) IsOpen() bool { return d.State().IsOpen() }

// IsLocked reports whether the door is locked.
func (d *Door) IsLocked() bool { return d.State().IsLocked() }

// Status returns a snapshot of color and flags.
func (d *Door) Status() Status {
	s := d.State()
	return Status{Color: d.color, Open: s.IsOpen(), Locked: s.IsLocked()}
}

// Describe writes the three-line diagnostic dump: color, open flag, locked flag.
func (d *Door) Describe(w io.Writer) error {
	s := d.Status()
	_, err := fmt.Fprintf(w, "Türfarbe: %s\nTür offen: %t\nTür verriegelt: %t\n", s.Color, s.Open, s.Locked)
	return err
}
