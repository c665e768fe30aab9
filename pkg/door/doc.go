// Package door models a door with a color, an open flag and a locked flag,
// and the lock mechanism it delegates locking to.
//
// A Door starts closed and unlocked. Its four requests are guarded:
//
//	Open    allowed unless locked
//	Close   always allowed
//	Lock    allowed unless open; the mechanism's Engage result becomes the locked flag
//	Unlock  allowed only when locked; the mechanism's Release result becomes the locked flag
//
// A request whose precondition does not hold is a no-op. Nothing is returned
// as an error; each request reports an Outcome instead, which callers may
// ignore. As a result a door is never open and locked at once.
//
// The transitions run on a statemachine.Machine keyed by State and Operation.
//
// # Usage
//
//	log := logger.New(logger.WithContextExtractors(door.LogExtractor()))
//	d := door.MustNew(door.NewLock(log), "green", door.WithLogger(log))
//	_ = d.Describe(os.Stdout)
//	d.Open()
//	_ = d.Describe(os.Stdout)
//
// Scripts (LoadScript, DefaultScript) replay a YAML list of steps against a
// door; cmd/doordemo is built on them.
package door
