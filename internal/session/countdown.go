package session

import (
	"fmt"
	"time"
)

// DefaultSessionDuration is the practice timer length.
const DefaultSessionDuration = 60 * time.Minute

// TickInterval is the countdown resolution.
const TickInterval = time.Second

// Countdown is the session timer. Each Start begins a new tick generation;
// ticks from an older generation are ignored, so a pause/start cycle never
// doubles the tick rate.
type Countdown struct {
	Total     time.Duration
	Remaining time.Duration
	running   bool
	gen       uint64
}

// TickResult tells the caller what to do after a tick.
type TickResult struct {
	// Continue means schedule the next tick.
	Continue bool

	// Expired is set on the tick that reaches zero.
	Expired bool
}

// NewCountdown creates a stopped timer. A non-positive total uses
// DefaultSessionDuration.
func NewCountdown(total time.Duration) *Countdown {
	if total <= 0 {
		total = DefaultSessionDuration
	}
	return &Countdown{Total: total, Remaining: total}
}

// Start runs the timer and returns the generation the caller must pass to
// Tick. ok is false if the timer was already running or has no time left.
func (c *Countdown) Start() (gen uint64, ok bool) {
	if c.running || c.Remaining <= 0 {
		return c.gen, false
	}
	c.running = true
	c.gen++
	return c.gen, true
}

// Pause stops the timer, keeping the remaining time.
func (c *Countdown) Pause() {
	c.running = false
	c.gen++
}

// Reset stops the timer and restores the full duration.
func (c *Countdown) Reset() {
	c.running = false
	c.gen++
	c.Remaining = c.Total
}

// Running reports whether the timer is counting down.
func (c *Countdown) Running() bool { return c.running }

// Tick advances the timer by one TickInterval if gen is current.
func (c *Countdown) Tick(gen uint64) TickResult {
	if !c.running || gen != c.gen {
		return TickResult{}
	}
	c.Remaining -= TickInterval
	if c.Remaining <= 0 {
		c.Remaining = 0
		c.running = false
		return TickResult{Expired: true}
	}
	return TickResult{Continue: true}
}

// FormatRemaining renders d as mm:ss.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
