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

package chrono_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/swoolego/corert/internal/chrono"
)

func TestOneShotFiresAfterDelay(t *testing.T) {
	fired := make(chan struct{})
	chrono.OneShot(5*time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("timer did not fire")
	}
}

func TestOneShotStopPreventsFire(t *testing.T) {
	var fired atomic.Bool
	stop := chrono.OneShot(50*time.Millisecond, func() { fired.Store(true) })

	assert.True(t, stop())
	time.Sleep(80 * time.Millisecond)
	assert.False(t, fired.Load())
}

func TestRepeatingStopsWhenPredicateFalse(t *testing.T) {
	var count atomic.Int32
	var allow atomic.Bool
	allow.Store(true)

	done := make(chan struct{})
	go func() {
		chrono.Repeating(5*time.Millisecond, allow.Load, func() {
			count.Add(1)
		})
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	allow.Store(false)

	select {
	case <-done:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("repeating loop did not stop")
	}
	assert.Greater(t, int(count.Load()), 0)
}
