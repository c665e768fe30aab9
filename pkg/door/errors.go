package door

import "errors"

var (
	ErrNilLock          = errors.New("door: lock mechanism is required")
	ErrUnknownOperation = errors.New("door: unknown operation")
	ErrInvalidScript    = errors.New("door: invalid script")
)
