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

// Package mailbox implements a FIFO message queue with configurable
// capacity and overflow behavior. It is the single point through which
// messages cross between coroutines.
//
// A Mailbox never blocks its caller longer than a small, fixed epsilon on
// operations documented as non-blocking: Go's channels have no concept of a
// truly instantaneous, non-blocking send or receive that also observes a
// slow concurrent reader/writer, so every "non-blocking" path here is
// implemented as a select against a tiny timeout rather than a bare
// select/default. This keeps the timing contract identical across hosts
// instead of relying on each runtime's own notion of an uncontested
// channel operation.
package mailbox

import (
	"sync"
	"time"

	"go.uber.org/atomic"

	"github.com/swoolego/corert/message"
	"github.com/swoolego/corert/xtime"
)

// nonBlockingEpsilon bounds every operation documented as non-blocking.
// It is deliberately small: large enough that an uncontested channel
// operation always completes within it, small enough that callers relying
// on "does not block" are never surprised by a multi-millisecond stall.
const nonBlockingEpsilon = 1 * time.Millisecond

// EnqueueResult reports what Enqueue did with a message.
type EnqueueResult int

const (
	// Accepted means the message was placed in the mailbox.
	Accepted EnqueueResult = iota
	// Dropped means the message being enqueued was discarded instead of
	// delivered. A DropOldest eviction that makes room reports Accepted.
	Dropped
	// Backpressured means the mailbox was full and the Backpressure
	// strategy declined the enqueue without discarding anything.
	Backpressured
)

// String renders the result name, used in logs.
func (r EnqueueResult) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case Dropped:
		return "dropped"
	case Backpressured:
		return "backpressured"
	default:
		return "unknown"
	}
}

// Mailbox is a FIFO queue of message envelopes with a configurable capacity
// and overflow policy. The zero value is not usable; construct one with
// New.
//
// A Mailbox assumes a single producer and a single consumer for ordering
// purposes: concurrent producers may interleave, but each individual
// producer's envelopes are delivered in the order it enqueued them.
type Mailbox struct {
	name   string
	config *Config
	ch     chan *message.Envelope
	closed atomic.Bool

	mu    sync.Mutex
	drain []*message.Envelope
}

// New creates a Mailbox identified by name, provisioned according to
// config. A nil config defaults to an unbounded mailbox.
func New(name string, config *Config) *Mailbox {
	if config == nil {
		config = Unbounded()
	}
	return &Mailbox{
		name:   name,
		config: config,
		ch:     make(chan *message.Envelope, config.Capacity()),
	}
}

// Name returns the identifier this mailbox was constructed with.
func (m *Mailbox) Name() string { return m.name }

// Enqueue places env at the back of the mailbox, applying the configured
// overflow strategy if the mailbox is bounded and full.
func (m *Mailbox) Enqueue(env *message.Envelope) (EnqueueResult, error) {
	if m.closed.Load() {
		return 0, NewClosedError(m.name)
	}

	if m.config.IsBounded() && len(m.ch) >= m.config.Capacity() {
		return m.handleOverflow(env)
	}

	if m.tryPush(env) {
		return Accepted, nil
	}
	// Lost the race against a concurrent close or a burst of producers
	// filling the last slot; treat it the same as arriving full.
	if m.closed.Load() {
		return 0, NewClosedError(m.name)
	}
	if m.config.IsBounded() {
		return m.handleOverflow(env)
	}
	return Dropped, nil
}

func (m *Mailbox) handleOverflow(env *message.Envelope) (EnqueueResult, error) {
	switch m.config.Strategy() {
	case DropNewest:
		return Dropped, nil
	case DropOldest:
		m.tryPop()
		if m.tryPush(env) {
			return Accepted, nil
		}
		return Dropped, nil
	case Backpressure:
		return Backpressured, nil
	case ThrowOnOverflow:
		return 0, NewOverflowError(m.name, m.config.Capacity(), m.config.Strategy())
	default:
		return Dropped, nil
	}
}

// Dequeue removes and returns the envelope at the front of the mailbox
// without blocking beyond the package's non-blocking epsilon. It returns
// None if the mailbox was empty (or briefly contested) at the time of the
// call.
func (m *Mailbox) Dequeue() xtime.Option[*message.Envelope] {
	if m.closed.Load() {
		if env, ok := m.popDrain(); ok {
			return xtime.Some(env)
		}
		return xtime.None[*message.Envelope]()
	}
	if env, ok := m.tryPop(); ok {
		return xtime.Some(env)
	}
	return xtime.None[*message.Envelope]()
}

// DequeueBlocking removes and returns the envelope at the front of the
// mailbox, waiting up to timeout for one to arrive. It returns a
// TimeoutError if none arrives in time, or a ClosedError if the mailbox is
// closed (and already drained) while waiting.
func (m *Mailbox) DequeueBlocking(timeout xtime.Duration) (*message.Envelope, error) {
	if m.closed.Load() {
		if env, ok := m.popDrain(); ok {
			return env, nil
		}
		return nil, NewClosedError(m.name)
	}

	select {
	case env, ok := <-m.ch:
		if !ok {
			if drained, ok2 := m.popDrain(); ok2 {
				return drained, nil
			}
			return nil, NewClosedError(m.name)
		}
		return env, nil
	case <-time.After(timeout.Std()):
		return nil, NewTimeoutError(m.name, timeout)
	}
}

// Count returns the number of envelopes currently queued.
func (m *Mailbox) Count() int {
	if m.closed.Load() {
		m.mu.Lock()
		defer m.mu.Unlock()
		return len(m.drain)
	}
	return len(m.ch)
}

// IsEmpty reports whether the mailbox currently holds no envelopes.
func (m *Mailbox) IsEmpty() bool {
	return m.Count() == 0
}

// IsFull reports whether a bounded mailbox is at capacity. An unbounded
// mailbox is never full.
func (m *Mailbox) IsFull() bool {
	if !m.config.IsBounded() {
		return false
	}
	return m.Count() >= m.config.Capacity()
}

// Close drains whatever is currently queued into an internal buffer
// (so envelopes enqueued before Close are still observable by Dequeue
// and DequeueBlocking) and marks the mailbox closed. Close is idempotent.
// Enqueue against a closed mailbox always fails with ClosedError.
func (m *Mailbox) Close() {
	if !m.closed.CompareAndSwap(false, true) {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for {
		select {
		case env, ok := <-m.ch:
			if !ok {
				close(m.ch)
				return
			}
			m.drain = append(m.drain, env)
		default:
			close(m.ch)
			return
		}
	}
}

// tryPush attempts to send env on the channel, bounded by the non-blocking
// epsilon. It reports whether the send succeeded; it never sends once the
// mailbox is closed.
func (m *Mailbox) tryPush(env *message.Envelope) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed.Load() {
		return false
	}
	select {
	case m.ch <- env:
		return true
	case <-time.After(nonBlockingEpsilon):
		return false
	}
}

// tryPop attempts to receive from the channel, bounded by the non-blocking
// epsilon. It reports whether a value was received.
func (m *Mailbox) tryPop() (*message.Envelope, bool) {
	select {
	case env, ok := <-m.ch:
		return env, ok
	case <-time.After(nonBlockingEpsilon):
		return nil, false
	}
}

// popDrain removes the oldest envelope from the post-close drain buffer.
func (m *Mailbox) popDrain() (*message.Envelope, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.drain) == 0 {
		return nil, false
	}
	env := m.drain[0]
	m.drain = m.drain[1:]
	return env, true
}
