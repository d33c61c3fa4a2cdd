package minefield

import (
	"testing"
	"time"
)

type fakeTicker struct {
	ch      chan time.Time
	stopped chan struct{}
}

func newFakeTicker() *fakeTicker {
	return &fakeTicker{
		ch:      make(chan time.Time),
		stopped: make(chan struct{}),
	}
}

func (f *fakeTicker) C() <-chan time.Time {
	return f.ch
}

func (f *fakeTicker) Stop() {
	close(f.stopped)
}

// fire delivers one tick and waits until the clock has consumed it.
func (f *fakeTicker) fire(t *testing.T, ticks <-chan int) int {
	t.Helper()
	select {
	case f.ch <- time.Now():
	case <-time.After(time.Second):
		t.Fatal("clock did not accept tick")
	}
	select {
	case e := <-ticks:
		return e
	case <-time.After(time.Second):
		t.Fatal("tick callback not called")
	}
	return -1
}

func newTestClock() (*Clock, *fakeTicker, chan int) {
	ft := newFakeTicker()
	c := NewClock(time.Second)
	c.newTicker = func(time.Duration) Ticker { return ft }
	ticks := make(chan int, 16)
	c.SetOnTick(func(elapsed int) { ticks <- elapsed })
	return c, ft, ticks
}

func TestClockCounts(t *testing.T) {
	c, ft, ticks := newTestClock()
	if c.Running() {
		t.Fatal("new clock should be stopped")
	}
	c.Start()
	if !c.Running() {
		t.Fatal("clock should be running")
	}

	for want := 1; want <= 3; want++ {
		if got := ft.fire(t, ticks); got != want {
			t.Fatalf("expected tick %d, got %d", want, got)
		}
	}
	if c.Elapsed() != 3 {
		t.Fatalf("expected elapsed 3, got %d", c.Elapsed())
	}

	if got := c.Stop(); got != 3 {
		t.Fatalf("Stop should return 3, got %d", got)
	}
}

func TestClockStopIsFinal(t *testing.T) {
	c, ft, ticks := newTestClock()
	c.Start()
	ft.fire(t, ticks)
	c.Stop()

	select {
	case <-ft.stopped:
	default:
		t.Fatal("ticker should be stopped once Stop returns")
	}
	select {
	case ft.ch <- time.Now():
		t.Fatal("no goroutine should be reading ticks after Stop")
	case <-time.After(20 * time.Millisecond):
	}
	if c.Running() || c.Elapsed() != 1 {
		t.Fatalf("expected stopped clock at 1, got running=%v elapsed=%d", c.Running(), c.Elapsed())
	}
	if len(ticks) != 0 {
		t.Fatal("no callback expected after Stop")
	}
}

func TestClockCancelDropsTicks(t *testing.T) {
	c, ft, ticks := newTestClock()
	c.Start()
	ft.fire(t, ticks)

	done := c.cancel()
	if done == nil {
		t.Fatal("cancel of a running clock should return its done channel")
	}
	select {
	case ft.ch <- time.Now():
	case <-time.After(20 * time.Millisecond):
	}
	wait(done)

	if c.Running() || c.Elapsed() != 1 {
		t.Fatalf("expected stopped clock at 1, got running=%v elapsed=%d", c.Running(), c.Elapsed())
	}
	if len(ticks) != 0 {
		t.Fatal("no callback expected after cancel")
	}
	if c.cancel() != nil {
		t.Fatal("cancel of a stopped clock should return nil")
	}
}

func TestClockStopWhenStopped(t *testing.T) {
	c := NewClock(time.Second)
	if got := c.Stop(); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestClockReset(t *testing.T) {
	c, ft, ticks := newTestClock()
	c.Start()
	ft.fire(t, ticks)
	ft.fire(t, ticks)
	c.Reset()
	if c.Running() || c.Elapsed() != 0 {
		t.Fatalf("expected stopped clock at 0, got running=%v elapsed=%d", c.Running(), c.Elapsed())
	}
}

func TestClockStartTwice(t *testing.T) {
	calls := 0
	c := NewClock(time.Second)
	c.newTicker = func(time.Duration) Ticker {
		calls++
		return newFakeTicker()
	}
	c.Start()
	c.Start()
	c.Stop()
	if calls != 1 {
		t.Fatalf("expected one ticker, got %d", calls)
	}
}

func TestClockRealTicker(t *testing.T) {
	c := NewClock(5 * time.Millisecond)
	ticks := make(chan int, 64)
	c.SetOnTick(func(elapsed int) {
		select {
		case ticks <- elapsed:
		default:
		}
	})
	c.Start()
	select {
	case <-ticks:
	case <-time.After(time.Second):
		t.Fatal("real ticker never fired")
	}
	final := c.Stop()
	time.Sleep(20 * time.Millisecond)
	if c.Elapsed() != final {
		t.Fatalf("elapsed moved after Stop: %d -> %d", final, c.Elapsed())
	}
}
