package door

import (
	"log/slog"

	"github.com/dmitrymomot/doorkit/pkg/logger"
)

// LockMechanism is the collaborator a Door delegates locking to.
// The returned value is the locked state after the call, not a success flag.
type LockMechanism interface {
	Engage() bool
	Release() bool
}

// Lock is the default LockMechanism. It is stateless and never fails; the
// zero value is ready to use.
type Lock struct{}

// NewLock returns a Lock and announces its creation on log.
func NewLock(log *slog.Logger) *Lock {
	if log != nil {
		log.Info("lock created", logger.Component("lock"))
	}
	return &Lock{}
}

// Engage always reports the lock as engaged.
func (Lock) Engage() bool { return true }

// Release always reports the lock as no longer engaged.
func (Lock) Release() bool { return false }
