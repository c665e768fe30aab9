package door

import (
	"fmt"
	"strings"
)

// State is a reachable combination of the open and locked flags.
type State string

const (
	ClosedUnlocked State = "closed_unlocked"
	Open           State = "open"
	ClosedLocked   State = "closed_locked"
)

func stateOf(open, locked bool) State {
	switch {
	case open:
		return Open
	case locked:
		return ClosedLocked
	default:
		return ClosedUnlocked
	}
}

// IsOpen reports the open flag of s.
func (s State) IsOpen() bool { return s == Open }

// IsLocked reports the locked flag of s.
func (s State) IsLocked() bool { return s == ClosedLocked }

// Operation names a request a Door can receive.
type Operation string

const (
	OpOpen   Operation = "open"
	OpClose  Operation = "close"
	OpLock   Operation = "lock"
	OpUnlock Operation = "unlock"
)

// Operations lists every transition request in a stable order.
var Operations = []Operation{OpOpen, OpClose, OpLock, OpUnlock}

// ParseOperation maps a case-insensitive name to an Operation.
func ParseOperation(name string) (Operation, error) {
	op := Operation(strings.ToLower(strings.TrimSpace(name)))
	switch op {
	case OpOpen, OpClose, OpLock, OpUnlock:
		return op, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOperation, name)
}

// Outcome tells the caller whether a request changed anything it was allowed to.
// Rejected requests leave the door untouched.
type Outcome int

const (
	Rejected Outcome = iota
	Applied
)

func (o Outcome) String() string {
	if o == Applied {
		return "applied"
	}
	return "rejected"
}

// Status is a point-in-time snapshot of a door.
type Status struct {
	Color  string `json:"color" yaml:"color"`
	Open   bool   `json:"open" yaml:"open"`
	Locked bool   `json:"locked" yaml:"locked"`
}
