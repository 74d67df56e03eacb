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

// Package chrono provides the raw timer primitives the runtime's scheduler
// builds its one-shot and repeating schedule operations on top of. It is
// deliberately thin: no cancellation bookkeeping beyond what time.Timer and
// time.Ticker already give, since the runtime layers its own Cancellable
// identity and timer-id tracking on top.
package chrono

import "time"

// OneShot runs fn once after d elapses and returns a function that cancels
// the pending fire. Calling the returned function after fn has already run
// is a harmless no-op, matching time.Timer.Stop's own contract.
func OneShot(d time.Duration, fn func()) (stop func() bool) {
	t := time.AfterFunc(d, fn)
	return t.Stop
}

// Repeating calls fn once per interval for as long as shouldContinue
// reports true, checked immediately before every call including the
// first. It blocks the calling goroutine until shouldContinue reports
// false, at which point it stops its internal ticker and returns.
func Repeating(interval time.Duration, shouldContinue func() bool, fn func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		if !shouldContinue() {
			return
		}
		fn()
	}
}
