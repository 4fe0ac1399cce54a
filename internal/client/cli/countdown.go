package cli

import (
	"sync"
	"time"
)

// countdown tracks the OTP resend delay. It ticks in its own goroutine and
// never touches session state.
type countdown struct {
	total time.Duration
	tick  time.Duration

	mu        sync.Mutex
	remaining int
	stop      chan struct{}
}

func newCountdown(total, tick time.Duration) *countdown {
	return &countdown{total: total, tick: tick}
}

// Start (re)starts the countdown from the full interval.
func (c *countdown) Start() {
	c.Stop()

	steps := int(c.total / c.tick)
	if c.total%c.tick != 0 {
		steps++
	}

	stop := make(chan struct{})
	c.mu.Lock()
	c.remaining = steps
	c.stop = stop
	c.mu.Unlock()

	go c.run(stop)
}

func (c *countdown) run(stop chan struct{}) {
	ticker := time.NewTicker(c.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			if c.stop != stop {
				c.mu.Unlock()
				return
			}
			c.remaining--
			done := c.remaining <= 0
			if done {
				c.remaining = 0
			}
			c.mu.Unlock()
			if done {
				return
			}
		case <-stop:
			return
		}
	}
}

// Stop halts the countdown and resets it to zero.
func (c *countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
	c.remaining = 0
}

// Remaining returns the number of ticks left, zero once resend is allowed.
func (c *countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}
