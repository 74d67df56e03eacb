// MIT License
//
// Copyright (c) 2022-2026 GoAkt Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package corert

import (
	"sync"

	"go.uber.org/atomic"
)

// Cancellable is a handle to a scheduled unit of future work: a running
// timer, or a timer request queued before the runtime has started.
type Cancellable interface {
	// Cancel requests that the underlying work not run. It is safe to call
	// more than once and safe to call after the work has already run; both
	// are no-ops.
	Cancel()
	// IsCancelled reports whether Cancel has been called on this handle.
	IsCancelled() bool
}

// timerCancellable backs a Cancellable returned for a timer that has
// already been handed to the Go runtime (because the corert Runtime was
// already inside its scheduling loop when the timer was requested).
//
// Its stop function is installed by the timer goroutine once the
// underlying time.Timer exists, and read by Cancel from whatever goroutine
// calls it, so both sides of that field go through mu rather than racing
// on a plain func value. cancelSignal lets a caller's Cancel unblock the
// timer goroutine immediately instead of forcing it to wait out the full
// delay: the timer goroutine selects on both its own fire and
// cancelSignal, and consults stoppedClean to know whether the timer's
// callback has been suppressed for good or might still be in flight.
type timerCancellable struct {
	once         sync.Once
	cancelled    atomic.Bool
	cancelSignal chan struct{}

	mu           sync.Mutex
	stop         func() bool
	stoppedClean bool
}

func newTimerCancellable() *timerCancellable {
	return &timerCancellable{cancelSignal: make(chan struct{})}
}

// setStop installs the underlying timer's stop function. Safe to call
// concurrently with Cancel.
func (c *timerCancellable) setStop(stop func() bool) {
	c.mu.Lock()
	c.stop = stop
	c.mu.Unlock()
}

func (c *timerCancellable) Cancel() {
	c.once.Do(func() {
		c.cancelled.Store(true)
		c.mu.Lock()
		stop := c.stop
		c.mu.Unlock()
		if stop != nil {
			clean := stop()
			c.mu.Lock()
			c.stoppedClean = clean
			c.mu.Unlock()
		}
		close(c.cancelSignal)
	})
}

func (c *timerCancellable) IsCancelled() bool {
	return c.cancelled.Load()
}

// stoppedCleanly reports whether Cancel's call to stop() prevented the
// timer's callback from ever running. Only meaningful once cancelSignal
// has been closed.
func (c *timerCancellable) stoppedCleanly() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stoppedClean
}

// awaitFire blocks until either fired is closed (the timer's callback ran
// to completion, including a no-op run suppressed by IsCancelled) or this
// handle is cancelled. On the cancel path, if stop() did not cleanly
// prevent the callback from running, it also waits for fired, since the
// callback may still be executing concurrently.
func (c *timerCancellable) awaitFire(fired chan struct{}) {
	select {
	case <-fired:
	case <-c.cancelSignal:
		if !c.stoppedCleanly() {
			<-fired
		}
	}
}

// deferredCancellable backs a Cancellable returned for a timer requested
// before the Runtime has started running. It carries no timer of its own:
// it is just a flag a queued thunk consults once the scheduler starts,
// before ever creating the real timer.
type deferredCancellable struct {
	cancelled atomic.Bool
}

func newDeferredCancellable() *deferredCancellable {
	return &deferredCancellable{}
}

func (c *deferredCancellable) Cancel() {
	c.cancelled.Store(true)
}

func (c *deferredCancellable) IsCancelled() bool {
	return c.cancelled.Load()
}
