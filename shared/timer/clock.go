// Package timer is a frame-driven one-shot scheduler. Time only moves when the owner
// calls Advance from its update loop, so callbacks run on the caller's goroutine.
package timer

import (
	"sort"
	"time"
)

// Handle identifies a scheduled callback. Handles pair a slot with a generation so a
// stale handle can never touch a newer timer that reuses the slot. The zero Handle is
// never valid.
type Handle struct {
	slot uint32
	gen  uint32
}

// IsZero reports whether h was never issued.
func (h Handle) IsZero() bool { return h.gen == 0 }

type entry struct {
	gen    uint32
	due    time.Duration
	seq    uint64
	fn     func()
	active bool
}

// Clock owns simulated time and the pending timers.
type Clock struct {
	now     time.Duration
	seq     uint64
	entries []entry
	free    []uint32
	pending int
}

// NewClock returns a clock at time zero.
func NewClock() *Clock {
	return &Clock{}
}

// Now is the simulated time elapsed since the clock was created.
func (c *Clock) Now() time.Duration { return c.now }

// Pending is the number of timers that have not fired or been stopped.
func (c *Clock) Pending() int { return c.pending }

// AfterFunc schedules fn to run once, d after Now. A negative d is treated as zero.
// The callback runs during the first Advance that reaches its due time, and never
// during the Advance that scheduled it.
func (c *Clock) AfterFunc(d time.Duration, fn func()) Handle {
	if d < 0 {
		d = 0
	}

	var slot uint32
	if n := len(c.free); n > 0 {
		slot = c.free[n-1]
		c.free = c.free[:n-1]
	} else {
		c.entries = append(c.entries, entry{})
		slot = uint32(len(c.entries) - 1)
	}

	e := &c.entries[slot]
	e.gen++
	if e.gen == 0 {
		e.gen = 1
	}
	c.seq++
	e.due = c.now + d
	e.seq = c.seq
	e.fn = fn
	e.active = true
	c.pending++

	return Handle{slot: slot, gen: e.gen}
}

// Stop cancels the timer. It reports whether the timer was still pending.
func (c *Clock) Stop(h Handle) bool {
	e := c.lookup(h)
	if e == nil {
		return false
	}
	c.release(h.slot)
	return true
}

// Remaining returns how long until the timer fires, and false if h is not pending.
func (c *Clock) Remaining(h Handle) (time.Duration, bool) {
	e := c.lookup(h)
	if e == nil {
		return 0, false
	}
	if e.due <= c.now {
		return 0, true
	}
	return e.due - c.now, true
}

// Advance moves time forward by dt and fires every timer that is now due, ordered by
// due time and then by scheduling order. It returns the number of callbacks run.
func (c *Clock) Advance(dt time.Duration) int {
	if dt > 0 {
		c.now += dt
	}

	type due struct {
		h   Handle
		at  time.Duration
		seq uint64
	}
	var ready []due
	for i := range c.entries {
		e := &c.entries[i]
		if e.active && e.due <= c.now {
			ready = append(ready, due{h: Handle{slot: uint32(i), gen: e.gen}, at: e.due, seq: e.seq})
		}
	}
	sort.Slice(ready, func(i, j int) bool {
		if ready[i].at != ready[j].at {
			return ready[i].at < ready[j].at
		}
		return ready[i].seq < ready[j].seq
	})

	fired := 0
	for _, r := range ready {
		// An earlier callback may have stopped this one.
		e := c.lookup(r.h)
		if e == nil {
			continue
		}
		fn := e.fn
		c.release(r.h.slot)
		if fn != nil {
			fn()
		}
		fired++
	}
	return fired
}

// Reset stops every pending timer without running it.
func (c *Clock) Reset() {
	for i := range c.entries {
		if c.entries[i].active {
			c.release(uint32(i))
		}
	}
}

func (c *Clock) lookup(h Handle) *entry {
	if h.IsZero() || int(h.slot) >= len(c.entries) {
		return nil
	}
	e := &c.entries[h.slot]
	if !e.active || e.gen != h.gen {
		return nil
	}
	return e
}

func (c *Clock) release(slot uint32) {
	e := &c.entries[slot]
	e.active = false
	e.fn = nil
	c.free = append(c.free, slot)
	c.pending--
}
