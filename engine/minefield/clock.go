package minefield

import (
	"sync"
	"time"
)

// Ticker is the part of time.Ticker the clock needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct {
	*time.Ticker
}

func (t timeTicker) C() <-chan time.Time {
	return t.Ticker.C
}

func newTimeTicker(d time.Duration) Ticker {
	return timeTicker{time.NewTicker(d)}
}

// Clock counts whole periods while running. Each run owns one goroutine,
// and Stop does not return until that goroutine has exited.
type Clock struct {
	period    time.Duration
	newTicker func(time.Duration) Ticker

	mu      sync.Mutex
	elapsed int
	stop    chan struct{}
	done    chan struct{}
	onTick  func(elapsed int)
}

// NewClock creates a stopped clock that ticks once per period.
func NewClock(period time.Duration) *Clock {
	return &Clock{
		period:    period,
		newTicker: newTimeTicker,
	}
}

// SetOnTick registers a callback run on the clock goroutine after every tick.
// The callback must not call Stop or Reset.
func (c *Clock) SetOnTick(f func(elapsed int)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onTick = f
}

// Start begins counting from the current elapsed value. Starting a running clock does nothing.
func (c *Clock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stop != nil {
		return
	}
	c.stop = make(chan struct{})
	c.done = make(chan struct{})
	go c.run(c.newTicker(c.period), c.stop, c.done)
}

// Stop halts the clock and returns the final elapsed count.
// No tick is counted or delivered after Stop returns.
func (c *Clock) Stop() int {
	wait(c.cancel())
	return c.Elapsed()
}

// Reset stops the clock and zeroes it.
func (c *Clock) Reset() {
	c.Stop()
	c.clear()
}

// cancel stops counting without waiting for the clock goroutine.
// Ticks that arrive afterwards are dropped. The returned channel is closed
// once the goroutine has exited; it is nil if the clock was not running.
func (c *Clock) cancel() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stop == nil {
		return nil
	}
	close(c.stop)
	done := c.done
	c.stop = nil
	c.done = nil
	return done
}

func (c *Clock) clear() {
	c.mu.Lock()
	c.elapsed = 0
	c.mu.Unlock()
}

// wait blocks until a channel returned by cancel is closed.
func wait(done <-chan struct{}) {
	if done != nil {
		<-done
	}
}

// Elapsed returns the number of ticks counted so far.
func (c *Clock) Elapsed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsed
}

// Running reports whether the clock is counting.
func (c *Clock) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stop != nil
}

func (c *Clock) run(t Ticker, stop, done chan struct{}) {
	defer close(done)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C():
			if !c.advance(stop) {
				return
			}
		}
	}
}

// advance counts one tick unless the run identified by stop has been cancelled.
func (c *Clock) advance(stop chan struct{}) bool {
	c.mu.Lock()
	if c.stop != stop {
		c.mu.Unlock()
		return false
	}
	c.elapsed++
	elapsed := c.elapsed
	onTick := c.onTick
	c.mu.Unlock()

	if onTick != nil {
		onTick(elapsed)
	}
	return true
}
