package game

import (
	"errors"
	"time"
)

// ErrClockRegression is returned when a timer sees a time earlier than its start
var ErrClockRegression = errors.New("clock went backwards")

// Clock is the session's time source
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FrameClock is a manual clock for headless runs and tests.
// Tick advances it by one frame step.
type FrameClock struct {
	now  time.Time
	step time.Duration
}

// NewFrameClock creates a clock at start that ticks by step
func NewFrameClock(start time.Time, step time.Duration) *FrameClock {
	return &FrameClock{now: start, step: step}
}

func (c *FrameClock) Now() time.Time {
	return c.now
}

func (c *FrameClock) Tick() {
	c.now = c.now.Add(c.step)
}

// Advance moves the clock by d. A negative d simulates a clock regression.
func (c *FrameClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
