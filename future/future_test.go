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

package future_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/swoolego/corert/future"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestResolveThenAwait(t *testing.T) {
	slot := future.New[int]()
	slot.Resolve(42)

	value, err := slot.Await()
	require.NoError(t, err)
	assert.Equal(t, 42, value)
	assert.True(t, slot.IsResolved())
}

func TestAwaitBlocksUntilResolved(t *testing.T) {
	slot := future.New[string]()

	go func() {
		time.Sleep(10 * time.Millisecond)
		slot.Resolve("done")
	}()

	value, err := slot.Await()
	require.NoError(t, err)
	assert.Equal(t, "done", value)
}

func TestFailThenAwaitReturnsWrappedCause(t *testing.T) {
	slot := future.New[int]()
	cause := errors.New("boom")
	slot.Fail(cause)

	_, err := slot.Await()
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, future.ErrFailed)
}

func TestCancelThenAwaitReturnsCancelledError(t *testing.T) {
	slot := future.New[int]()
	slot.Cancel()

	_, err := slot.Await()
	require.Error(t, err)
	assert.ErrorIs(t, err, future.ErrCancelled)
}

func TestFirstWriterWins(t *testing.T) {
	slot := future.New[int]()
	slot.Resolve(1)
	slot.Resolve(2)
	slot.Fail(errors.New("too late"))
	slot.Cancel()

	value, err := slot.Await()
	require.NoError(t, err)
	assert.Equal(t, 1, value)
}

func TestOnCancelInvokedInRegistrationOrder(t *testing.T) {
	slot := future.New[int]()
	var order []int

	slot.OnCancel(func() { order = append(order, 1) })
	slot.OnCancel(func() { order = append(order, 2) })
	slot.OnCancel(func() { order = append(order, 3) })

	slot.Cancel()

	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestOnCancelRegisteredAfterCancelRunsImmediately(t *testing.T) {
	slot := future.New[int]()
	slot.Cancel()

	called := false
	slot.OnCancel(func() { called = true })

	assert.True(t, called)
}

func TestOnCancelNotInvokedOnResolve(t *testing.T) {
	slot := future.New[int]()
	called := false
	slot.OnCancel(func() { called = true })

	slot.Resolve(7)

	assert.False(t, called)
}
