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

	"github.com/stretchr/testify/require"

	"github.com/zokli/gotell/eventstream"
	"github.com/zokli/gotell/log"
)

func collectDeadLetters(t *testing.T, subscriber eventstream.Subscriber) []*DeadLetter {
	t.Helper()
	var letters []*DeadLetter
	for message := range subscriber.Iterator() {
		letter, ok := message.Payload().(*DeadLetter)
		require.True(t, ok)
		letters = append(letters, letter)
	}
	return letters
}

func TestDeadLetters(t *testing.T) {
	t.Run("With drops published to the stream", func(t *testing.T) {
		deadLetters := NewDeadLetters()
		subscriber := deadLetters.Subscribe()
		receiver := NewReceiver(
			WithName("teller"),
			WithLogger(log.DiscardLogger),
			WithDeadLetters(deadLetters),
		)

		sender := receiver.AsSender()
		sender.Send(foreign{reason: "junk"})
		sender.Send(ping{seq: 3})
		require.NoError(t, Handle(receiver.Wait(), func(ping) {}).Run())

		letters := collectDeadLetters(t, subscriber)
		require.Len(t, letters, 1)
		require.Equal(t, "teller", letters[0].Receiver)
		require.Equal(t, foreign{reason: "junk"}, letters[0].Message)
		deadLetters.Close()
	})
	t.Run("With Close never dead-lettered", func(t *testing.T) {
		deadLetters := NewDeadLetters()
		subscriber := deadLetters.Subscribe()
		receiver := NewReceiver(WithLogger(log.DiscardLogger), WithDeadLetters(deadLetters))

		receiver.AsSender().Send(Close{})
		require.ErrorIs(t, receiver.Wait().Run(), ErrClosed)

		require.Empty(t, collectDeadLetters(t, subscriber))
		deadLetters.Close()
	})
	t.Run("With every subscriber receiving the drop", func(t *testing.T) {
		deadLetters := NewDeadLetters()
		first := deadLetters.Subscribe()
		second := deadLetters.Subscribe()
		receiver := NewReceiver(WithLogger(log.DiscardLogger), WithDeadLetters(deadLetters))

		sender := receiver.AsSender()
		sender.Send(foreign{reason: "junk"})
		sender.Send(Close{})
		require.ErrorIs(t, receiver.Wait().Run(), ErrClosed)

		require.Len(t, collectDeadLetters(t, first), 1)
		require.Len(t, collectDeadLetters(t, second), 1)
		deadLetters.Close()
	})
	t.Run("With unsubscribed subscribers no longer receiving", func(t *testing.T) {
		deadLetters := NewDeadLetters()
		subscriber := deadLetters.Subscribe()
		receiver := NewReceiver(WithLogger(log.DiscardLogger), WithDeadLetters(deadLetters))
		sender := receiver.AsSender()

		sender.Send(foreign{reason: "first"})
		sender.Send(Close{})
		require.ErrorIs(t, receiver.Wait().Run(), ErrClosed)
		require.Len(t, collectDeadLetters(t, subscriber), 1)

		deadLetters.Unsubscribe(subscriber)
		require.False(t, subscriber.Active())

		sender.Send(foreign{reason: "second"})
		sender.Send(Close{})
		require.ErrorIs(t, receiver.Wait().Run(), ErrClosed)

		require.Empty(t, collectDeadLetters(t, subscriber))
		deadLetters.Close()
	})
	t.Run("With Close shutting subscribers down", func(t *testing.T) {
		deadLetters := NewDeadLetters()
		subscriber := deadLetters.Subscribe()
		require.True(t, subscriber.Active())
		deadLetters.Close()
		require.False(t, subscriber.Active())
	})
}
