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

// Package corert implements a cooperative-scheduling runtime on top of
// goroutines: a scheduler that tracks spawned work and pending timers until
// it starts running, and a small set of collaborators (mailbox, future,
// cancellable) that coroutines use to communicate.
package corert

// defaultMailboxCapacity is the capacity CreateMailbox falls back to when a
// caller does not supply a Config of its own.
const defaultMailboxCapacity = 1000

// defaultMaxCoroutines is the default max-coroutines setting. The value is
// advisory: it is stored and reported by MaxCoroutines, and Spawn does not
// consult it.
const defaultMaxCoroutines = 100_000

// RuntimeConfig configures a Runtime at construction time. RuntimeConfig
// values are immutable; the With* methods return a modified copy.
type RuntimeConfig struct {
	defaultMailboxCapacity int
	coroutineHookEnabled   bool
	maxCoroutines          int
}

// NewRuntimeConfig returns a RuntimeConfig with the runtime's defaults: a
// default mailbox capacity of 1000, the coroutine hook enabled, and a
// max-coroutines setting of 100,000.
func NewRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		defaultMailboxCapacity: defaultMailboxCapacity,
		coroutineHookEnabled:   true,
		maxCoroutines:          defaultMaxCoroutines,
	}
}

// WithDefaultMailboxCapacity returns a copy of the config using n as the
// capacity CreateMailbox applies when no explicit mailbox Config is given.
func (c *RuntimeConfig) WithDefaultMailboxCapacity(n int) *RuntimeConfig {
	cp := *c
	cp.defaultMailboxCapacity = n
	return &cp
}

// WithCoroutineHook returns a copy of the config with the coroutine hook
// setting enabled or disabled. The setting is stored and reported by
// CoroutineHookEnabled; the Runtime itself does not act on it, and there
// is no way to register a hook with it.
func (c *RuntimeConfig) WithCoroutineHook(enabled bool) *RuntimeConfig {
	cp := *c
	cp.coroutineHookEnabled = enabled
	return &cp
}

// WithMaxCoroutines returns a copy of the config with the advisory
// max-coroutines setting at n. Spawn does not enforce it.
func (c *RuntimeConfig) WithMaxCoroutines(n int) *RuntimeConfig {
	cp := *c
	cp.maxCoroutines = n
	return &cp
}

// DefaultMailboxCapacity returns the capacity CreateMailbox falls back to.
func (c *RuntimeConfig) DefaultMailboxCapacity() int { return c.defaultMailboxCapacity }

// CoroutineHookEnabled reports whether the coroutine hook setting is enabled.
func (c *RuntimeConfig) CoroutineHookEnabled() bool { return c.coroutineHookEnabled }

// MaxCoroutines returns the configured (advisory) max-coroutines setting.
func (c *RuntimeConfig) MaxCoroutines() int { return c.maxCoroutines }
