// MIT License
//
// Copyright (c) 2025-2026 Gotell Team
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

package messaging

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnboundedMailbox(t *testing.T) {
	t.Run("With FIFO across enqueues", func(t *testing.T) {
		mailbox := NewUnboundedMailbox()
		require.True(t, mailbox.IsEmpty())

		require.NoError(t, mailbox.Enqueue(ping{seq: 1}))
		require.NoError(t, mailbox.Enqueue(ping{seq: 2}))
		require.NoError(t, mailbox.Enqueue(ping{seq: 3}))
		assert.EqualValues(t, 3, mailbox.Len())
		assert.False(t, mailbox.IsEmpty())

		for i := 1; i <= 3; i++ {
			msg, ok := mailbox.Dequeue()
			require.True(t, ok)
			require.Equal(t, ping{seq: i}, msg)
		}
		assert.True(t, mailbox.IsEmpty())
		assert.EqualValues(t, 0, mailbox.Len())

		mailbox.Dispose()
	})
	t.Run("With Dequeue blocking until a message arrives", func(t *testing.T) {
		mailbox := NewUnboundedMailbox()
		received := make(chan Message, 1)
		go func() {
			msg, ok := mailbox.Dequeue()
			if ok {
				received <- msg
			}
			close(received)
		}()

		select {
		case <-received:
			t.Fatal("dequeue returned on an empty mailbox")
		case <-time.After(50 * time.Millisecond):
		}

		require.NoError(t, mailbox.Enqueue(pong{tag: "late"}))
		select {
		case msg := <-received:
			require.Equal(t, pong{tag: "late"}, msg)
		case <-time.After(time.Second):
			t.Fatal("dequeue did not wake up after enqueue")
		}

		mailbox.Dispose()
	})
	t.Run("With Dispose releasing a blocked consumer", func(t *testing.T) {
		mailbox := NewUnboundedMailbox()
		released := make(chan bool, 1)
		go func() {
			_, ok := mailbox.Dequeue()
			released <- ok
		}()

		time.Sleep(50 * time.Millisecond)
		mailbox.Dispose()

		select {
		case ok := <-released:
			require.False(t, ok)
		case <-time.After(time.Second):
			t.Fatal("dequeue still blocked after dispose")
		}
	})
	t.Run("With Enqueue after Dispose", func(t *testing.T) {
		mailbox := NewUnboundedMailbox()
		mailbox.Dispose()
		require.ErrorIs(t, mailbox.Enqueue(ping{seq: 1}), ErrMailboxClosed)

		// dispose is idempotent
		mailbox.Dispose()
	})
}

func TestBoundedMailbox(t *testing.T) {
	t.Run("With FIFO within capacity", func(t *testing.T) {
		mailbox := NewBoundedMailbox(4)
		require.True(t, mailbox.IsEmpty())

		for i := 1; i <= 4; i++ {
			require.NoError(t, mailbox.Enqueue(ping{seq: i}))
		}
		assert.EqualValues(t, 4, mailbox.Len())

		for i := 1; i <= 4; i++ {
			msg, ok := mailbox.Dequeue()
			require.True(t, ok)
			require.Equal(t, ping{seq: i}, msg)
		}
		assert.True(t, mailbox.IsEmpty())

		mailbox.Dispose()
	})
	t.Run("With Enqueue blocking when full until a dequeue", func(t *testing.T) {
		mailbox := NewBoundedMailbox(2)
		require.NoError(t, mailbox.Enqueue(ping{seq: 1}))
		require.NoError(t, mailbox.Enqueue(ping{seq: 2}))

		enqueued := make(chan error, 1)
		go func() {
			enqueued <- mailbox.Enqueue(ping{seq: 3})
		}()

		select {
		case <-enqueued:
			t.Fatal("enqueue did not block on a full mailbox")
		case <-time.After(50 * time.Millisecond):
		}

		msg, ok := mailbox.Dequeue()
		require.True(t, ok)
		require.Equal(t, ping{seq: 1}, msg)

		select {
		case err := <-enqueued:
			require.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("enqueue still blocked after a dequeue freed space")
		}

		msg, ok = mailbox.Dequeue()
		require.True(t, ok)
		require.Equal(t, ping{seq: 2}, msg)
		msg, ok = mailbox.Dequeue()
		require.True(t, ok)
		require.Equal(t, ping{seq: 3}, msg)

		mailbox.Dispose()
	})
	t.Run("With Dispose releasing blocked producer and consumer", func(t *testing.T) {
		mailbox := NewBoundedMailbox(2)
		require.NoError(t, mailbox.Enqueue(ping{seq: 1}))
		require.NoError(t, mailbox.Enqueue(ping{seq: 2}))

		enqueued := make(chan error, 1)
		go func() {
			enqueued <- mailbox.Enqueue(ping{seq: 3})
		}()

		time.Sleep(50 * time.Millisecond)
		mailbox.Dispose()

		select {
		case err := <-enqueued:
			require.ErrorIs(t, err, ErrMailboxClosed)
		case <-time.After(time.Second):
			t.Fatal("enqueue still blocked after dispose")
		}

		_, ok := mailbox.Dequeue()
		require.False(t, ok)
	})
	t.Run("With Enqueue after Dispose", func(t *testing.T) {
		mailbox := NewBoundedMailbox(2)
		mailbox.Dispose()
		require.ErrorIs(t, mailbox.Enqueue(ping{seq: 1}), ErrMailboxClosed)
	})
}
