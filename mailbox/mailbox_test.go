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

package mailbox_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/swoolego/corert/mailbox"
	"github.com/swoolego/corert/message"
	"github.com/swoolego/corert/xtime"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestEnqueueDequeueOrdering(t *testing.T) {
	mb := mailbox.New("t1", mailbox.Bounded(10, mailbox.Backpressure))

	for i := 0; i < 5; i++ {
		result, err := mb.Enqueue(message.New(i))
		require.NoError(t, err)
		require.Equal(t, mailbox.Accepted, result)
	}

	for i := 0; i < 5; i++ {
		opt := mb.Dequeue()
		require.True(t, opt.IsSome())
		env, _ := opt.Get()
		assert.Equal(t, i, env.Payload())
	}

	assert.True(t, mb.Dequeue().IsNone())
}

func TestDropNewestDiscardsIncoming(t *testing.T) {
	mb := mailbox.New("t2", mailbox.Bounded(2, mailbox.DropNewest))

	_, err := mb.Enqueue(message.New("a"))
	require.NoError(t, err)
	_, err = mb.Enqueue(message.New("b"))
	require.NoError(t, err)

	result, err := mb.Enqueue(message.New("c"))
	require.NoError(t, err)
	assert.Equal(t, mailbox.Dropped, result)

	opt := mb.Dequeue()
	env, _ := opt.Get()
	assert.Equal(t, "a", env.Payload())
}

func TestDropOldestEvictsFront(t *testing.T) {
	mb := mailbox.New("t3", mailbox.Bounded(2, mailbox.DropOldest))

	_, err := mb.Enqueue(message.New("a"))
	require.NoError(t, err)
	_, err = mb.Enqueue(message.New("b"))
	require.NoError(t, err)

	result, err := mb.Enqueue(message.New("c"))
	require.NoError(t, err)
	assert.Equal(t, mailbox.Accepted, result)

	first := mb.Dequeue()
	env, _ := first.Get()
	assert.Equal(t, "b", env.Payload())

	second := mb.Dequeue()
	env, _ = second.Get()
	assert.Equal(t, "c", env.Payload())
}

func TestBackpressureReportsWithoutDiscarding(t *testing.T) {
	mb := mailbox.New("t4", mailbox.Bounded(1, mailbox.Backpressure))

	_, err := mb.Enqueue(message.New("a"))
	require.NoError(t, err)

	result, err := mb.Enqueue(message.New("b"))
	require.NoError(t, err)
	assert.Equal(t, mailbox.Backpressured, result)

	opt := mb.Dequeue()
	env, _ := opt.Get()
	assert.Equal(t, "a", env.Payload())
}

func TestThrowOnOverflowReturnsError(t *testing.T) {
	mb := mailbox.New("t5", mailbox.Bounded(1, mailbox.ThrowOnOverflow))

	_, err := mb.Enqueue(message.New("a"))
	require.NoError(t, err)

	_, err = mb.Enqueue(message.New("b"))
	require.Error(t, err)
	assert.ErrorIs(t, err, mailbox.ErrOverflow)
}

func TestCloseThenDrainStillDeliversQueuedMessages(t *testing.T) {
	mb := mailbox.New("t6", mailbox.Bounded(10, mailbox.Backpressure))

	_, err := mb.Enqueue(message.New("a"))
	require.NoError(t, err)
	_, err = mb.Enqueue(message.New("b"))
	require.NoError(t, err)

	mb.Close()

	_, err = mb.Enqueue(message.New("c"))
	require.Error(t, err)
	assert.ErrorIs(t, err, mailbox.ErrClosed)

	opt := mb.Dequeue()
	require.True(t, opt.IsSome())
	env, _ := opt.Get()
	assert.Equal(t, "a", env.Payload())

	opt = mb.Dequeue()
	env, _ = opt.Get()
	assert.Equal(t, "b", env.Payload())

	assert.True(t, mb.Dequeue().IsNone())
}

func TestCloseIsIdempotent(t *testing.T) {
	mb := mailbox.New("t7", mailbox.Unbounded())
	mb.Close()
	mb.Close()
	assert.True(t, mb.IsEmpty())
}

func TestDequeueBlockingTimesOut(t *testing.T) {
	mb := mailbox.New("t8", mailbox.Unbounded())

	_, err := mb.DequeueBlocking(xtime.Millis(5))
	require.Error(t, err)
	assert.ErrorIs(t, err, mailbox.ErrTimeout)
}

func TestDequeueBlockingReturnsClosedOnceDrained(t *testing.T) {
	mb := mailbox.New("t9", mailbox.Unbounded())
	mb.Close()

	_, err := mb.DequeueBlocking(xtime.Millis(50))
	require.Error(t, err)
	assert.ErrorIs(t, err, mailbox.ErrClosed)
}

func TestUnboundedNeverThrowsOnOverflow(t *testing.T) {
	mb := mailbox.New("t10", mailbox.Unbounded())
	for i := 0; i < 1000; i++ {
		result, err := mb.Enqueue(message.New(i))
		require.NoError(t, err)
		require.Equal(t, mailbox.Accepted, result)
	}
	assert.Equal(t, 1000, mb.Count())
}
