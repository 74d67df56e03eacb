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

package future

import "github.com/pkg/errors"

// Sentinel errors an Await caller can test against with errors.Is,
// regardless of which FutureSlot raised them.
var (
	ErrCancelled = errors.New("future: cancelled")
	ErrFailed    = errors.New("future: failed")
)

// CancelledError is returned by Await when the slot was cancelled before
// resolving.
type CancelledError struct {
	err error
}

func newCancelledError() *CancelledError {
	return &CancelledError{err: ErrCancelled}
}

func (e *CancelledError) Error() string { return e.err.Error() }

// Unwrap exposes the sentinel so errors.Is(err, ErrCancelled) works.
func (e *CancelledError) Unwrap() error { return e.err }

// ExceptionError is returned by Await when the slot was failed with a
// cause. It wraps that cause so callers can unwrap through to it.
type ExceptionError struct {
	cause error
}

func newExceptionError(cause error) *ExceptionError {
	return &ExceptionError{cause: cause}
}

func (e *ExceptionError) Error() string {
	return errors.Wrap(e.cause, ErrFailed.Error()).Error()
}

// Unwrap exposes the original failure cause passed to Fail.
func (e *ExceptionError) Unwrap() error { return e.cause }

// Is matches the ErrFailed sentinel, so errors.Is(err, ErrFailed) works
// alongside errors.Is(err, cause).
func (e *ExceptionError) Is(target error) bool { return target == ErrFailed }
