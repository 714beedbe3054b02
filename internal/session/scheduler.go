package session

import "time"

// Timer is a pending callback.
type Timer interface {
	// Stop cancels the callback. It reports false if the callback
	// already ran or was stopped.
	Stop() bool
}

// Scheduler runs callbacks after a delay on its own goroutine.
// The session engine uses it for clock ticks, reveal windows and the
// game-over delay so tests can drive time by hand.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type wallScheduler struct{}

func (wallScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// WallClock returns a Scheduler backed by time.AfterFunc.
func WallClock() Scheduler { return wallScheduler{} }
