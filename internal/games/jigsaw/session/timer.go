package session

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// TickerFunc starts a periodic tick source. It returns the tick channel and
// a function that releases it.
type TickerFunc func(interval time.Duration) (<-chan time.Time, func())

// systemTicker is the default TickerFunc, backed by time.Ticker.
func systemTicker(interval time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(interval)
	return t.C, t.Stop
}

// Timer counts elapsed ticks in a background goroutine.
//
// Every run owns its own counter; Restart swaps in a fresh one, so a tick
// delivered to a cancelled run can never show up in the new count.
// Elapsed may be called from any goroutine.
type Timer struct {
	interval  time.Duration
	newTicker TickerFunc

	mu  sync.Mutex
	run *timerRun

	current atomic.Pointer[atomic.Int64]
}

type timerRun struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// NewTimer creates a stopped timer. A nil ticker uses time.Ticker.
func NewTimer(interval time.Duration, ticker TickerFunc) *Timer {
	if ticker == nil {
		ticker = systemTicker
	}
	t := &Timer{
		interval:  interval,
		newTicker: ticker,
	}
	t.current.Store(new(atomic.Int64))
	return t
}

// Start begins counting from zero. It is a no-op while a run is active.
// The run ends when ctx is cancelled or Stop is called.
func (t *Timer) Start(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.run != nil {
		return
	}

	counter := new(atomic.Int64)
	t.current.Store(counter)

	runCtx, cancel := context.WithCancel(ctx)
	run := &timerRun{cancel: cancel, done: make(chan struct{})}
	t.run = run

	ticks, release := t.newTicker(t.interval)
	go func() {
		defer close(run.done)
		defer t.finish(run)
		defer release()
		for {
			select {
			case <-runCtx.Done():
				return
			case <-ticks:
				counter.Add(1)
			}
		}
	}()
}

// finish forgets run if it is still the active one, so a run ended by its
// context does not block the next Start.
func (t *Timer) finish(run *timerRun) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.run == run {
		t.run = nil
	}
}

// Stop cancels the active run and waits for its goroutine to exit.
// The elapsed value of the stopped run stays readable.
func (t *Timer) Stop() {
	t.mu.Lock()
	run := t.run
	t.run = nil
	t.mu.Unlock()

	if run == nil {
		return
	}
	run.cancel()
	<-run.done
}

// Restart stops the active run, if any, and starts a new one from zero.
func (t *Timer) Restart(ctx context.Context) {
	t.Stop()
	t.Start(ctx)
}

// Running reports whether a run is active.
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.run != nil
}

// Ticks returns the number of ticks counted by the current run.
func (t *Timer) Ticks() int64 {
	return t.current.Load().Load()
}

// Elapsed returns the ticks of the current run as a duration.
func (t *Timer) Elapsed() time.Duration {
	return time.Duration(t.Ticks()) * t.interval
}
