package clock

import (
	"sync"
	"time"
)

// TestClock is a Clock whose time only moves when SetTime is called. Timers
// armed via After fire when the clock is advanced past their deadline.
type TestClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*testTimer
}

type testTimer struct {
	deadline time.Time
	ch       chan time.Time
}

// NewTestClock returns a TestClock starting at the given time.
func NewTestClock(start time.Time) *TestClock {
	return &TestClock{now: start}
}

// Now returns the clock's current time.
func (c *TestClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// After arms a timer that fires when the clock reaches now+d.
func (c *TestClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := &testTimer{
		deadline: c.now.Add(d),
		ch:       make(chan time.Time, 1),
	}
	if !t.deadline.After(c.now) {
		t.ch <- c.now
		return t.ch
	}
	c.timers = append(c.timers, t)
	return t.ch
}

// SetTime moves the clock to now and fires every timer whose deadline has
// been reached.
func (c *TestClock) SetTime(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = now
	var remaining []*testTimer
	for _, t := range c.timers {
		if !t.deadline.After(now) {
			t.ch <- now
		} else {
			remaining = append(remaining, t)
		}
	}
	c.timers = remaining
}

// Advance moves the clock forward by d.
func (c *TestClock) Advance(d time.Duration) {
	c.mu.Lock()
	now := c.now.Add(d)
	c.mu.Unlock()
	c.SetTime(now)
}
