package ledger

import (
	"sync/atomic"
	"time"
)

// Clock supplies the current time as unix seconds.
type Clock interface {
	Now() int64
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() int64 {
	return time.Now().Unix()
}

// ManualClock is a clock that only moves when told to.
type ManualClock struct {
	now atomic.Int64
}

func NewManualClock(now int64) *ManualClock {
	c := &ManualClock{}
	c.now.Store(now)
	return c
}

func (c *ManualClock) Now() int64 {
	return c.now.Load()
}

func (c *ManualClock) Set(now int64) {
	c.now.Store(now)
}

// Advance moves the clock forward by the given number of seconds.
func (c *ManualClock) Advance(seconds int64) int64 {
	return c.now.Add(seconds)
}
