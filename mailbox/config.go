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

package mailbox

// OverflowStrategy controls what a bounded Mailbox does when Enqueue is
// called against a full mailbox.
type OverflowStrategy int

const (
	// DropNewest silently discards the envelope being enqueued, leaving the
	// existing contents untouched.
	DropNewest OverflowStrategy = iota
	// DropOldest evicts the envelope at the front of the mailbox to make
	// room for the one being enqueued.
	DropOldest
	// Backpressure reports the enqueue as not accepted without discarding
	// anything, leaving it to the caller to retry or apply its own policy.
	Backpressure
	// ThrowOnOverflow returns an OverflowError instead of enqueuing.
	ThrowOnOverflow
)

// String renders the strategy name, used in error messages and logs.
func (s OverflowStrategy) String() string {
	switch s {
	case DropNewest:
		return "drop-newest"
	case DropOldest:
		return "drop-oldest"
	case Backpressure:
		return "backpressure"
	case ThrowOnOverflow:
		return "throw-on-overflow"
	default:
		return "unknown"
	}
}

// unboundedCapacity is the internal channel capacity given to an unbounded
// mailbox. It is large enough that a consumer keeping pace with its
// producer never fills it; once it is full, Enqueue on an unbounded
// mailbox reports Dropped.
const unboundedCapacity = 1 << 16

// Config describes how a Mailbox is provisioned: bounded or unbounded, its
// capacity, and what it does on overflow. Config values are immutable; the
// With* methods return a modified copy.
type Config struct {
	bounded  bool
	capacity int
	strategy OverflowStrategy
}

// Unbounded returns a Config for a mailbox with no configured capacity
// limit; its channel holds up to unboundedCapacity envelopes. Its overflow
// strategy is never consulted.
func Unbounded() *Config {
	return &Config{bounded: false, capacity: unboundedCapacity}
}

// Bounded returns a Config for a mailbox capped at capacity, applying
// strategy once that capacity is reached.
func Bounded(capacity int, strategy OverflowStrategy) *Config {
	if capacity < 1 {
		capacity = 1
	}
	return &Config{bounded: true, capacity: capacity, strategy: strategy}
}

// WithStrategy returns a copy of the Config using the given overflow
// strategy. It has no effect on an unbounded Config.
func (c *Config) WithStrategy(strategy OverflowStrategy) *Config {
	cp := *c
	cp.strategy = strategy
	return &cp
}

// IsBounded reports whether the mailbox enforces a capacity.
func (c *Config) IsBounded() bool { return c.bounded }

// Capacity returns the configured capacity. For an unbounded Config this is
// an implementation detail, not a contract.
func (c *Config) Capacity() int { return c.capacity }

// Strategy returns the configured overflow strategy.
func (c *Config) Strategy() OverflowStrategy { return c.strategy }
