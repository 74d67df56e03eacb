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
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/swoolego/corert/internal/chrono"
	"github.com/swoolego/corert/log"
	"github.com/swoolego/corert/mailbox"
	"github.com/swoolego/corert/xtime"
)

// tag prefixes every id this runtime hands out, so callers can recognize
// them (and tests can assert on their shape) without the runtime exposing
// any internal counters directly.
const tag = "corert"

// minTimerDelay is the smallest delay ScheduleOnce and ScheduleRepeatedly
// will actually wait: requests for less are clamped up to it, the same way
// a cooperative scheduler on a single-threaded host would treat "fire on
// the next tick" as a lower bound rather than true zero latency.
const minTimerDelay = time.Millisecond

// Task is a unit of work a Runtime runs as its own coroutine. It receives
// the Runtime so it can spawn further work, schedule timers, or create
// mailboxes from inside its own execution.
type Task func(rt *Runtime)

type pendingSpawn struct {
	id   string
	task Task
}

// Runtime is a cooperative scheduler: a single logical timeline of
// coroutines and timers, implemented on top of goroutines. Spawns and
// timer requests made before Run is called are queued and only take
// effect once Run starts; requests made from inside a running coroutine
// take effect immediately.
//
// A Runtime is safe for concurrent use.
type Runtime struct {
	config *RuntimeConfig
	logger log.Logger

	running         atomic.Bool
	insideScheduler atomic.Bool

	nextID      atomic.Int64
	nextTimerID atomic.Int64
	timerIDs    mapset.Set[int64]

	mu            sync.Mutex
	pendingSpawns []pendingSpawn
	pendingTimers []func()

	eg *errgroup.Group
}

// New creates a Runtime. A nil config uses NewRuntimeConfig's defaults; a
// nil logger uses log.DefaultLogger.
func New(config *RuntimeConfig, logger log.Logger) *Runtime {
	if config == nil {
		config = NewRuntimeConfig()
	}
	if logger == nil {
		logger = log.DefaultLogger
	}
	return &Runtime{
		config:   config,
		logger:   logger.With("component", "runtime"),
		timerIDs: mapset.NewSet[int64](),
	}
}

// IsRunning reports whether Run is currently executing this runtime's
// scheduling loop.
func (r *Runtime) IsRunning() bool {
	return r.running.Load()
}

// Name returns the stable identifier this runtime publishes, used as the
// prefix of every id Spawn hands out.
func (r *Runtime) Name() string {
	return tag
}

// CreateMailbox builds a Mailbox identified by name. A nil config applies
// the runtime's configured default mailbox capacity with a Backpressure
// overflow strategy.
func (r *Runtime) CreateMailbox(name string, config *mailbox.Config) *mailbox.Mailbox {
	if config == nil {
		config = mailbox.Bounded(r.config.DefaultMailboxCapacity(), mailbox.Backpressure)
	}
	return mailbox.New(name, config)
}

// Spawn schedules task to run as its own coroutine and returns an
// identifier unique within this runtime's lifetime. If the runtime is not
// yet running, task is queued and launched, in submission order, once Run
// starts; if the runtime is already running, task is launched immediately.
func (r *Runtime) Spawn(task Task) string {
	id := fmt.Sprintf("%s-%d", tag, r.nextID.Inc())

	if r.insideScheduler.Load() {
		r.launch(id, task)
		return id
	}

	r.mu.Lock()
	r.pendingSpawns = append(r.pendingSpawns, pendingSpawn{id: id, task: task})
	r.mu.Unlock()
	return id
}

// launch starts task on its own goroutine and returns once that goroutine
// has begun running it, so tasks launched one after another start in the
// order they were launched.
func (r *Runtime) launch(id string, task Task) {
	started := make(chan struct{})
	r.eg.Go(func() error {
		r.logger.Debugf("coroutine %s started", id)
		close(started)
		task(r)
		r.logger.Debugf("coroutine %s finished", id)
		return nil
	})
	<-started
}

// ScheduleOnce arranges for cb to run once, after delay elapses (clamped
// up to minTimerDelay). If called before Run starts, the timer is not
// created until Run starts; Cancel on the returned handle before then
// prevents it from ever being created.
func (r *Runtime) ScheduleOnce(delay xtime.Duration, cb func()) Cancellable {
	if r.insideScheduler.Load() {
		return r.scheduleOnceNow(delay, cb)
	}

	deferred := newDeferredCancellable()
	r.mu.Lock()
	r.pendingTimers = append(r.pendingTimers, func() {
		if deferred.IsCancelled() {
			return
		}
		r.scheduleOnceNow(delay, cb)
	})
	r.mu.Unlock()
	return deferred
}

func (r *Runtime) scheduleOnceNow(delay xtime.Duration, cb func()) Cancellable {
	id := r.nextTimerID.Inc()
	r.timerIDs.Add(id)

	handle := newTimerCancellable()
	fired := make(chan struct{})

	r.eg.Go(func() error {
		stop := chrono.OneShot(clampDelay(delay), func() {
			defer close(fired)
			defer r.timerIDs.Remove(id)
			if handle.IsCancelled() || !r.timerIDs.Contains(id) {
				return
			}
			cb()
		})
		handle.setStop(stop)
		handle.awaitFire(fired)
		return nil
	})

	return handle
}

// ScheduleRepeatedly arranges for cb to run once after initialDelay, then
// again every interval thereafter, until the returned handle is cancelled
// before the initial fire, or the runtime is shut down.
//
// Cancelling the returned handle after the initial fire has already run
// does not, by itself, stop the recurring timer: the handle tracks only
// the initial fire's identity. The recurring timer stops once Shutdown
// clears the runtime's tracked timer ids, or once the process exits.
func (r *Runtime) ScheduleRepeatedly(initialDelay, interval xtime.Duration, cb func()) Cancellable {
	if r.insideScheduler.Load() {
		return r.scheduleRepeatedlyNow(initialDelay, interval, cb)
	}

	deferred := newDeferredCancellable()
	r.mu.Lock()
	r.pendingTimers = append(r.pendingTimers, func() {
		if deferred.IsCancelled() {
			return
		}
		r.scheduleRepeatedlyNow(initialDelay, interval, cb)
	})
	r.mu.Unlock()
	return deferred
}

func (r *Runtime) scheduleRepeatedlyNow(initialDelay, interval xtime.Duration, cb func()) Cancellable {
	initID := r.nextTimerID.Inc()
	r.timerIDs.Add(initID)

	handle := newTimerCancellable()
	fired := make(chan struct{})
	d0 := clampDelay(initialDelay)
	dInterval := clampDelay(interval)

	r.eg.Go(func() error {
		stop := chrono.OneShot(d0, func() {
			defer close(fired)
			defer r.timerIDs.Remove(initID)
			if handle.IsCancelled() || !r.timerIDs.Contains(initID) {
				return
			}
			cb()
			r.startRecurring(dInterval, cb)
		})
		handle.setStop(stop)
		handle.awaitFire(fired)
		return nil
	})

	return handle
}

func (r *Runtime) startRecurring(interval time.Duration, cb func()) {
	recurID := r.nextTimerID.Inc()
	r.timerIDs.Add(recurID)

	r.eg.Go(func() error {
		chrono.Repeating(interval, func() bool {
			return r.timerIDs.Contains(recurID)
		}, cb)
		r.timerIDs.Remove(recurID)
		return nil
	})
}

func clampDelay(d xtime.Duration) time.Duration {
	std := d.Std()
	if std < minTimerDelay {
		return minTimerDelay
	}
	return std
}

// Yield gives other ready coroutines a chance to run before the calling
// goroutine resumes. It maps onto the host scheduler's own notion of
// yielding, runtime.Gosched.
func (r *Runtime) Yield() {
	runtime.Gosched()
}

// Sleep suspends the calling coroutine for d. Unlike ScheduleOnce, Sleep
// blocks the caller directly rather than registering a callback.
func (r *Runtime) Sleep(d xtime.Duration) {
	std := d.Std()
	if std <= 0 {
		return
	}
	time.Sleep(std)
}

// Run starts the scheduling loop: every coroutine and timer queued by
// Spawn, ScheduleOnce, or ScheduleRepeatedly before this call runs, in the
// order it was queued, and Run blocks until every coroutine spawned either
// before or during this call (transitively, including from other spawned
// coroutines) has returned.
//
// Calling Run while already running is a no-op.
func (r *Runtime) Run() {
	if !r.running.CompareAndSwap(false, true) {
		return
	}
	defer r.running.Store(false)

	eg, _ := errgroup.WithContext(context.Background())

	r.mu.Lock()
	r.eg = eg
	timers := r.pendingTimers
	spawns := r.pendingSpawns
	r.pendingTimers = nil
	r.pendingSpawns = nil
	r.mu.Unlock()

	r.insideScheduler.Store(true)
	r.logger.Infof("runtime starting with %d queued spawns and %d queued timers", len(spawns), len(timers))

	for _, thunk := range timers {
		thunk()
	}
	for _, sp := range spawns {
		r.launch(sp.id, sp.task)
	}

	_ = eg.Wait()
	r.insideScheduler.Store(false)
	r.logger.Info("runtime stopped")
}

// Shutdown clears every timer id the runtime is tracking, so that any
// still-pending one-shot timer becomes a no-op when it fires and any
// recurring timer stops rescheduling itself the next time it checks. It
// does not cancel coroutines already in flight; Run still waits for them
// to return on their own.
//
// timeout is accepted for signature parity with hosts whose shutdown can
// wait for in-flight work to drain on a deadline; this implementation does
// not consult it, since coroutines here are plain goroutines with no
// preemption point to interrupt.
func (r *Runtime) Shutdown(timeout xtime.Duration) {
	_ = timeout
	r.logger.Info("runtime shutting down, clearing tracked timers")
	r.timerIDs.Clear()
}
