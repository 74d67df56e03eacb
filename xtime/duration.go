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

// Package xtime provides the small value types the runtime, mailbox, and
// future packages treat as opaque external collaborators: a duration and a
// generic optional value. Neither type interprets the payloads it carries;
// they exist so the rest of the module has something concrete to compile
// against.
package xtime

import "time"

// Duration is a span of time, stored as a time.Duration with its
// nanosecond resolution. The runtime's scheduler clamps timer delays to at
// least one millisecond.
type Duration time.Duration

// Zero is the zero-length duration.
const Zero Duration = 0

// Millis builds a Duration from a count of milliseconds.
func Millis(ms int64) Duration {
	return Duration(time.Duration(ms) * time.Millisecond)
}

// Seconds builds a Duration from a (possibly fractional) count of seconds.
func Seconds(s float64) Duration {
	return Duration(time.Duration(s * float64(time.Second)))
}

// Std converts the Duration to its standard-library equivalent, for use at
// the boundary with time.Timer, time.Ticker, and context deadlines.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Milliseconds returns the duration as a whole number of milliseconds.
func (d Duration) Milliseconds() int64 {
	return time.Duration(d).Milliseconds()
}

// IsPositive reports whether the duration is greater than zero.
func (d Duration) IsPositive() bool {
	return d > 0
}

// String renders the duration in the standard library's human-readable form.
func (d Duration) String() string {
	return time.Duration(d).String()
}
