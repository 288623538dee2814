package hal

import "time"

// clock reports seconds elapsed since the previous call.
type clock interface {
	tick() float64
}

// fixedClock is used by fixed-step backends: every tick is 1/fps.
type fixedClock struct {
	dt float64
}

func newFixedClock(fps int) fixedClock { return fixedClock{dt: 1 / float64(fps)} }

func (c fixedClock) tick() float64 { return c.dt }

// wallClock measures real elapsed time. The first tick returns 0.
type wallClock struct {
	now  func() time.Time
	last time.Time
}

func newWallClock(now func() time.Time) *wallClock {
	if now == nil {
		now = time.Now
	}
	return &wallClock{now: now}
}

func (c *wallClock) tick() float64 {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		return 0
	}
	dt := t.Sub(c.last).Seconds()
	c.last = t
	if dt < 0 {
		return 0
	}
	return dt
}

// frameBudget is the wall time one frame may take at fps.
func frameBudget(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(fps)
}

// remaining returns how long to sleep after a frame that started at start.
func remaining(start, now time.Time, budget time.Duration) time.Duration {
	left := budget - now.Sub(start)
	if left < 0 {
		return 0
	}
	return left
}
