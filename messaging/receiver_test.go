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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/zokli/gotell/log"
	"github.com/zokli/gotell/telemetry"
)

func TestReceiver(t *testing.T) {
	t.Run("With a generated name by default", func(t *testing.T) {
		first := NewReceiver(WithLogger(log.DiscardLogger))
		second := NewReceiver(WithLogger(log.DiscardLogger))
		assert.True(t, strings.HasPrefix(first.Name(), "receiver-"))
		assert.True(t, strings.HasPrefix(second.Name(), "receiver-"))
		assert.NotEqual(t, first.Name(), second.Name())
	})
	t.Run("With an explicit name", func(t *testing.T) {
		receiver := NewReceiver(WithName("teller"), WithLogger(log.DiscardLogger))
		assert.Equal(t, "teller", receiver.Name())
	})
	t.Run("With a custom mailbox", func(t *testing.T) {
		mailbox := NewBoundedMailbox(4)
		receiver := NewReceiver(WithMailbox(mailbox), WithLogger(log.DiscardLogger))
		receiver.AsSender().Send(ping{seq: 1})
		require.EqualValues(t, 1, mailbox.Len())

		var got ping
		require.NoError(t, Handle(receiver.Wait(), func(m ping) { got = m }).Run())
		require.Equal(t, ping{seq: 1}, got)
		require.True(t, mailbox.IsEmpty())
	})
	t.Run("With sender copies sharing the mailbox", func(t *testing.T) {
		receiver := NewReceiver(WithLogger(log.DiscardLogger))
		first := receiver.AsSender()
		second := first // senders are plain values
		third := receiver.AsSender()

		first.Send(ping{seq: 1})
		second.Send(ping{seq: 2})
		third.Send(ping{seq: 3})

		var seqs []int
		for i := 0; i < 3; i++ {
			require.NoError(t, Handle(receiver.Wait(), func(m ping) { seqs = append(seqs, m.seq) }).Run())
		}
		require.Equal(t, []int{1, 2, 3}, seqs)
	})
	t.Run("With a zero-value sender dropping sends", func(t *testing.T) {
		var sender Sender
		require.NotPanics(t, func() { sender.Send(ping{seq: 1}) })
	})
	t.Run("With Dispose being idempotent", func(t *testing.T) {
		receiver := NewReceiver(WithLogger(log.DiscardLogger))
		receiver.Dispose()
		require.NotPanics(t, receiver.Dispose)
		require.ErrorIs(t, receiver.Wait().Run(), ErrClosed)
	})
	t.Run("With telemetry instruments installed", func(t *testing.T) {
		tel := telemetry.New(telemetry.WithMeterProvider(noop.NewMeterProvider()))
		receiver := NewReceiver(
			WithName("metered"),
			WithLogger(log.DiscardLogger),
			WithTelemetry(tel),
		)
		require.NotNil(t, receiver.metrics)

		// exercise the received, unhandled and handled paths
		sender := receiver.AsSender()
		sender.Send(foreign{reason: "junk"})
		sender.Send(ping{seq: 1})
		require.NoError(t, Handle(receiver.Wait(), func(ping) {}).Run())

		sender.Send(Close{})
		require.ErrorIs(t, receiver.Wait().Run(), ErrClosed)
	})
}
