package redemption

import (
	"sync"
	"sync/atomic"
	"time"
)

// Countdown drives the redemption window: a fixed number of one-second ticks,
// firing the expiry callback exactly once when it reaches zero. It must be
// canceled when the owning session discards the code, so a stale timer cannot
// expire a code the user already walked away from.
type Countdown struct {
	interval  time.Duration
	remaining atomic.Int64

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func NewCountdown(seconds int, interval time.Duration) *Countdown {
	c := &Countdown{
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	c.remaining.Store(int64(seconds))
	return c
}

// Start begins ticking in a background goroutine. onExpire runs at most once,
// and never after Cancel has returned the countdown to its caller.
func (c *Countdown) Start(onExpire func()) {
	go func() {
		defer close(c.done)
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		for {
			select {
			case <-c.stop:
				return
			case <-ticker.C:
				if c.remaining.Add(-1) <= 0 {
					select {
					case <-c.stop:
					default:
						onExpire()
					}
					return
				}
			}
		}
	}()
}

// Cancel stops the countdown without expiring. Idempotent.
func (c *Countdown) Cancel() {
	c.stopOnce.Do(func() { close(c.stop) })
}

// Remaining returns the seconds left, floored at zero.
func (c *Countdown) Remaining() int {
	r := c.remaining.Load()
	if r < 0 {
		return 0
	}
	return int(r)
}

// Wait blocks until the countdown goroutine has exited. Test hook.
func (c *Countdown) Wait() {
	<-c.done
}
