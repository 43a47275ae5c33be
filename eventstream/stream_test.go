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

package eventstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventsStream(t *testing.T) {
	t.Run("With Subscribe and Publish", func(t *testing.T) {
		broker := New()
		sub := broker.AddSubscriber()
		broker.Subscribe(sub, "topic1")
		require.True(t, sub.Active())
		require.Equal(t, 1, broker.SubscribersCount("topic1"))

		broker.Publish("topic1", "hi")
		broker.Publish("topic1", "there")

		var payloads []any
		for message := range sub.Iterator() {
			require.Equal(t, "topic1", message.Topic())
			payloads = append(payloads, message.Payload())
		}
		assert.Equal(t, []any{"hi", "there"}, payloads)
	})
	t.Run("With Publish on topic without subscribers", func(t *testing.T) {
		broker := New()
		// must not panic or block
		broker.Publish("nobody", "hello")
		assert.Zero(t, broker.SubscribersCount("nobody"))
	})
	t.Run("With Unsubscribe", func(t *testing.T) {
		broker := New()
		sub := broker.AddSubscriber()
		broker.Subscribe(sub, "topic1")
		broker.Unsubscribe(sub, "topic1")
		require.Empty(t, sub.Topics())

		broker.Publish("topic1", "dropped")
		_, open := <-sub.Iterator()
		assert.False(t, open)
	})
	t.Run("With RemoveSubscriber shutting the subscriber down", func(t *testing.T) {
		broker := New()
		sub := broker.AddSubscriber()
		broker.Subscribe(sub, "topic1")
		broker.RemoveSubscriber(sub)
		require.False(t, sub.Active())
		assert.Zero(t, broker.SubscribersCount("topic1"))
	})
	t.Run("With Broadcast over several topics", func(t *testing.T) {
		broker := New()
		first := broker.AddSubscriber()
		second := broker.AddSubscriber()
		broker.Subscribe(first, "a")
		broker.Subscribe(second, "b")

		broker.Broadcast("payload", []string{"a", "b"})

		messageA := <-first.Iterator()
		require.NotNil(t, messageA)
		assert.Equal(t, "a", messageA.Topic())
		assert.Equal(t, "payload", messageA.Payload())

		messageB := <-second.Iterator()
		require.NotNil(t, messageB)
		assert.Equal(t, "b", messageB.Topic())
	})
	t.Run("With subscriber IDs being unique", func(t *testing.T) {
		broker := New()
		first := broker.AddSubscriber()
		second := broker.AddSubscriber()
		assert.NotEqual(t, first.ID(), second.ID())
	})
	t.Run("With Close", func(t *testing.T) {
		broker := New()
		sub := broker.AddSubscriber()
		broker.Subscribe(sub, "topic1")
		broker.Close()
		require.False(t, sub.Active())
		// publishing after close must be a no-op
		broker.Publish("topic1", "late")
		_, open := <-sub.Iterator()
		assert.False(t, open)
	})
}
