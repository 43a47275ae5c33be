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
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zokli/gotell/log"
)

// benchRequest carries the reply address for the round-trip benchmark.
type benchRequest struct {
	replyTo Sender
}

func BenchmarkSend(b *testing.B) {
	receiver := NewReceiver(WithLogger(log.DiscardLogger))
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if Handle(receiver.Wait(), func(ping) {}).Run() != nil {
				return
			}
		}
	}()

	sender := receiver.AsSender()

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		// reuse one boxed message per goroutine to keep the hot path
		// allocation free
		msg := Message(ping{})
		for pb.Next() {
			sender.Send(msg)
		}
	})
	b.StopTimer()

	sender.Send(Close{})
	<-done
	messagesPerSec := float64(b.N) / b.Elapsed().Seconds()
	b.ReportMetric(messagesPerSec, "messages/sec")
}

func BenchmarkTurn(b *testing.B) {
	receiver := NewReceiver(WithLogger(log.DiscardLogger))
	sender := receiver.AsSender()
	msg := Message(ping{})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sender.Send(msg)
		chain := Handle(receiver.Wait(), func(pong) {})
		chain = Handle(chain, func(ping) {})
		if err := chain.Run(); err != nil {
			b.Fatal(err)
		}
	}
	b.StopTimer()

	turnsPerSec := float64(b.N) / b.Elapsed().Seconds()
	b.ReportMetric(turnsPerSec, "turns/sec")
}

func BenchmarkRequestReply(b *testing.B) {
	echo := NewReceiver(WithLogger(log.DiscardLogger))
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			err := Handle(echo.Wait(), func(m benchRequest) {
				m.replyTo.Send(pong{})
			}).Run()
			if err != nil {
				return
			}
		}
	}()

	home := NewReceiver(WithLogger(log.DiscardLogger))
	sender := echo.AsSender()
	request := Message(benchRequest{replyTo: home.AsSender()})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sender.Send(request)
		if err := Handle(home.Wait(), func(pong) {}).Run(); err != nil {
			b.Fatal(err)
		}
	}
	b.StopTimer()

	sender.Send(Close{})
	<-done
	roundTripsPerSec := float64(b.N) / b.Elapsed().Seconds()
	b.ReportMetric(roundTripsPerSec, "roundtrips/sec")
}

// BenchmarkShutdownLatency_100Agents measures shutdown latency with 100 agents
func BenchmarkShutdownLatency_100Agents(b *testing.B) {
	if testing.Short() {
		b.Skip("skipping shutdown benchmark in short mode")
	}

	benchmarkShutdownLatency(b, 100)
}

// BenchmarkShutdownLatency_1000Agents measures shutdown latency with 1,000 agents
func BenchmarkShutdownLatency_1000Agents(b *testing.B) {
	if testing.Short() {
		b.Skip("skipping shutdown benchmark in short mode")
	}

	benchmarkShutdownLatency(b, 1000)
}

// benchmarkShutdownLatency starts count agents and measures how long a full
// signal-and-join takes.
func benchmarkShutdownLatency(b *testing.B, count int) {
	ctx := context.Background()

	system := NewSystem(WithSystemLogger(log.DiscardLogger))
	for i := 0; i < count; i++ {
		require.NoError(b, system.Register("agent-"+strconv.Itoa(i), newEchoAgent()))
	}
	require.NoError(b, system.Start(ctx))

	b.ResetTimer()
	start := time.Now()
	err := system.Stop(ctx)
	shutdownDuration := time.Since(start)
	require.NoError(b, err)

	b.ReportMetric(float64(shutdownDuration.Nanoseconds())/1e6, "ms/shutdown")
	b.ReportMetric(float64(shutdownDuration.Nanoseconds())/float64(count), "ns/agent")
}
