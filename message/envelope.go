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

// Package message defines the opaque message envelope carried by a Mailbox.
// A Mailbox never inspects what it transports; Envelope exists so the rest
// of the module has a concrete type to route, rather than routing bare
// interface{} values.
package message

import "go.uber.org/atomic"

var sequence atomic.Uint64

// Envelope wraps an arbitrary payload with routing-independent metadata: a
// monotonic sequence number assigned at creation time, useful for logging
// and for tests that need to assert delivery order.
type Envelope struct {
	seq     uint64
	payload any
}

// New wraps payload in a freshly sequenced Envelope.
func New(payload any) *Envelope {
	return &Envelope{
		seq:     sequence.Inc(),
		payload: payload,
	}
}

// Payload returns the wrapped value.
func (e *Envelope) Payload() any {
	return e.payload
}

// Sequence returns the monotonic creation order of this envelope relative
// to every other envelope created in the process.
func (e *Envelope) Sequence() uint64 {
	return e.seq
}
