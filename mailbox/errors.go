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

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/swoolego/corert/xtime"
)

// Sentinel errors every structured mailbox error wraps, so callers can test
// with errors.Is against a stable value regardless of which mailbox raised
// it.
var (
	ErrClosed   = errors.New("mailbox: closed")
	ErrOverflow = errors.New("mailbox: overflow")
	ErrTimeout  = errors.New("mailbox: dequeue timed out")
)

// ClosedError is returned when an operation is attempted against a mailbox
// that has already been closed.
type ClosedError struct {
	mailbox string
	err     error
}

// NewClosedError builds a ClosedError for the named mailbox.
func NewClosedError(mailboxName string) *ClosedError {
	return &ClosedError{mailbox: mailboxName, err: ErrClosed}
}

func (e *ClosedError) Error() string {
	return fmt.Sprintf("%s: mailbox %q is closed", e.err, e.mailbox)
}

// Unwrap exposes the sentinel so errors.Is(err, ErrClosed) works.
func (e *ClosedError) Unwrap() error { return e.err }

// OverflowError is returned by Enqueue when a bounded mailbox is full and
// its overflow strategy is ThrowOnOverflow.
type OverflowError struct {
	mailbox  string
	capacity int
	strategy OverflowStrategy
	err      error
}

// NewOverflowError builds an OverflowError describing the mailbox that
// rejected the enqueue.
func NewOverflowError(mailboxName string, capacity int, strategy OverflowStrategy) *OverflowError {
	return &OverflowError{mailbox: mailboxName, capacity: capacity, strategy: strategy, err: ErrOverflow}
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s: mailbox %q is full (capacity=%d, strategy=%s)", e.err, e.mailbox, e.capacity, e.strategy)
}

// Unwrap exposes the sentinel so errors.Is(err, ErrOverflow) works.
func (e *OverflowError) Unwrap() error { return e.err }

// TimeoutError is returned by a blocking dequeue that does not observe a
// message before its deadline.
type TimeoutError struct {
	mailbox string
	timeout xtime.Duration
	err     error
}

// NewTimeoutError builds a TimeoutError describing the deadline that elapsed.
func NewTimeoutError(mailboxName string, timeout xtime.Duration) *TimeoutError {
	return &TimeoutError{mailbox: mailboxName, timeout: timeout, err: ErrTimeout}
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s: mailbox %q waited %s", e.err, e.mailbox, e.timeout)
}

// Unwrap exposes the sentinel so errors.Is(err, ErrTimeout) works.
func (e *TimeoutError) Unwrap() error { return e.err }
