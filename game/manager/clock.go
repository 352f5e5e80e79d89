package manager

import "time"

// Clock is the game tick timer. It is polled from the frame loop rather than
// firing on its own goroutine, so every tick runs on the UI thread.
type Clock struct {
	initial  time.Duration
	floor    time.Duration
	step     time.Duration
	interval time.Duration
	running  bool
	last     time.Time
}

// NewClock returns a stopped clock. Each point scored takes step off the
// interval, never going below floor.
func NewClock(initial, floor, step time.Duration) *Clock {
	return &Clock{
		initial:  initial,
		floor:    floor,
		step:     step,
		interval: initial,
	}
}

// Reset restores the start interval for a new session. initial replaces the
// configured start interval when non-zero (fast food mode starts quicker).
func (c *Clock) Reset(initial time.Duration) {
	if initial > 0 {
		c.initial = initial
	}
	c.interval = c.initial
	c.running = false
}

func (c *Clock) Start(now time.Time) {
	c.running = true
	c.last = now
}

func (c *Clock) Stop() {
	c.running = false
}

func (c *Clock) Running() bool {
	return c.running
}

func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Shorten applies the speed curve after the score reached score.
func (c *Clock) Shorten(score int) time.Duration {
	next := c.interval - time.Duration(score)*c.step
	if next < c.floor {
		next = c.floor
	}
	if next < c.interval {
		c.interval = next
	}
	return c.interval
}

// Due reports whether a tick should run at now and, if so, consumes it.
func (c *Clock) Due(now time.Time) bool {
	if !c.running {
		return false
	}
	if now.Sub(c.last) < c.interval {
		return false
	}
	// Ticks are scheduled from the previous deadline, not from the frame
	// that noticed it. Missed ticks are dropped.
	c.last = c.last.Add(c.interval)
	if now.Sub(c.last) >= c.interval {
		c.last = now
	}
	return true
}
