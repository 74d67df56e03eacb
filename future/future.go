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

// Package future implements FutureSlot, a single-assignment cell that a
// coroutine can block on while another coroutine (or a timer callback)
// produces its value.
package future

import "sync"

// Slot is a single-assignment future: the first call among Resolve, Fail,
// and Cancel determines its outcome; every later call is a no-op. Await
// blocks until that outcome is known.
//
// A Slot is safe for concurrent use.
type Slot[T any] struct {
	once sync.Once
	done chan struct{}

	mu        sync.Mutex
	value     T
	failure   error
	cancelled bool
	resolved  bool
	onCancel  []func()
}

// New creates an unresolved Slot.
func New[T any]() *Slot[T] {
	return &Slot[T]{done: make(chan struct{})}
}

// Resolve sets the slot's value. If the slot is already resolved, failed,
// or cancelled, Resolve has no effect.
func (s *Slot[T]) Resolve(value T) {
	s.once.Do(func() {
		s.mu.Lock()
		s.value = value
		s.resolved = true
		s.mu.Unlock()
		close(s.done)
	})
}

// Fail marks the slot as failed with cause. If the slot is already
// resolved, failed, or cancelled, Fail has no effect.
func (s *Slot[T]) Fail(cause error) {
	s.once.Do(func() {
		s.mu.Lock()
		s.failure = cause
		s.resolved = true
		s.mu.Unlock()
		close(s.done)
	})
}

// Cancel marks the slot as cancelled and invokes every callback registered
// with OnCancel, in registration order, synchronously on the calling
// goroutine. If the slot is already resolved, failed, or cancelled, Cancel
// has no effect.
func (s *Slot[T]) Cancel() {
	s.once.Do(func() {
		s.mu.Lock()
		s.cancelled = true
		s.resolved = true
		callbacks := s.onCancel
		s.onCancel = nil
		s.mu.Unlock()

		for _, cb := range callbacks {
			cb()
		}
		close(s.done)
	})
}

// OnCancel registers cb to run if the slot is (or becomes) cancelled. If
// the slot has already been cancelled by the time OnCancel is called, cb
// runs immediately, synchronously, before OnCancel returns. Callbacks never
// run if the slot resolves or fails instead.
func (s *Slot[T]) OnCancel(cb func()) {
	s.mu.Lock()
	if s.resolved {
		wasCancelled := s.cancelled
		s.mu.Unlock()
		if wasCancelled {
			cb()
		}
		return
	}
	s.onCancel = append(s.onCancel, cb)
	s.mu.Unlock()
}

// IsResolved reports whether the slot's outcome has been determined, by
// any of Resolve, Fail, or Cancel.
func (s *Slot[T]) IsResolved() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolved
}

// Await blocks until the slot's outcome is determined and returns it: the
// resolved value and a nil error, the zero value and an ExceptionError
// wrapping the failure cause, or the zero value and a CancelledError.
//
// Await has no timeout parameter; a caller that wants one should race it
// against a timer of its own and arrange for that timer to Cancel the slot.
func (s *Slot[T]) Await() (T, error) {
	<-s.done

	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	switch {
	case s.cancelled:
		return zero, newCancelledError()
	case s.failure != nil:
		return zero, newExceptionError(s.failure)
	default:
		return s.value, nil
	}
}
