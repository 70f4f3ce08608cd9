package playback

import (
	"context"
	"time"
)

// shouldTickLocked reports whether the tick timer should be running.
func (c *Controller) shouldTickLocked() bool {
	return !c.closed &&
		c.config.TickInterval > 0 &&
		c.current != nil &&
		c.playing &&
		!c.seeking
}

// syncTickerLocked starts or stops the tick timer to match the state.
// Must be called with lock held.
func (c *Controller) syncTickerLocked() {
	if !c.shouldTickLocked() {
		c.stopTickerLocked()
		return
	}
	if c.tickerCancel == nil {
		c.startTickerLocked()
	}
}

// restartTickerLocked restarts the timer so a new track gets a full interval
// before its first tick.
func (c *Controller) restartTickerLocked() {
	c.stopTickerLocked()
	c.syncTickerLocked()
}

func (c *Controller) stopTickerLocked() {
	if c.tickerCancel != nil {
		c.tickerCancel()
		c.tickerCancel = nil
	}
	c.tickerGen++
}

func (c *Controller) startTickerLocked() {
	c.tickerGen++
	gen := c.tickerGen
	interval := c.config.TickInterval

	ctx, cancel := context.WithCancel(context.Background())
	c.tickerCancel = cancel

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.onTimerTick(gen)
			}
		}
	}()
}

// onTimerTick runs a tick unless the timer that fired has been replaced.
func (c *Controller) onTimerTick(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.tickerGen {
		return
	}
	c.tickLocked()
}
