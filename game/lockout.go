package game

import (
	"fmt"
	"time"
)

// Lockout blocks an input class for a fixed duration after a triggering event.
// The zero value is an inactive lockout.
type Lockout struct {
	Duration time.Duration

	active bool
	since  time.Time
}

// NewLockout creates an inactive lockout
func NewLockout(d time.Duration) Lockout {
	return Lockout{Duration: d}
}

// Start (re)arms the lockout from now
func (l *Lockout) Start(now time.Time) {
	l.active = true
	l.since = now
}

func (l Lockout) Active() bool {
	return l.active
}

// Update clears the lockout once more than Duration has elapsed since Start.
// On a clock regression it returns ErrClockRegression and stays armed.
func (l *Lockout) Update(now time.Time) error {
	if !l.active {
		return nil
	}
	elapsed := now.Sub(l.since)
	if elapsed < 0 {
		return fmt.Errorf("lockout armed %s in the future: %w", -elapsed, ErrClockRegression)
	}
	if elapsed > l.Duration {
		l.active = false
	}
	return nil
}
