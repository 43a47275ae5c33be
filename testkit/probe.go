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

// Package testkit helps unit-test agents: a Probe stands in for a peer
// agent, records everything sent to it and offers assertion helpers on the
// recorded traffic.
package testkit

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zokli/gotell/internal/timer"
	"github.com/zokli/gotell/log"
	"github.com/zokli/gotell/messaging"
)

const (
	// MessagesQueueMax is the capacity of the probe's recording queue.
	MessagesQueueMax int = 1000
	// DefaultTimeout bounds every expectation that has no explicit duration.
	DefaultTimeout time.Duration = 3 * time.Second
)

// Probe defines the probe interface that helps perform some assertions
// when implementing unit tests with agents. Hand the probe's Sender to the
// code under test, typically as the reply-to of a request, and assert on
// what arrives.
type Probe interface {
	// ExpectMessage asserts that the next recorded message equals the expected one
	ExpectMessage(message messaging.Message)
	// ExpectMessageWithin asserts that the next recorded message equals the expected one within a time duration
	ExpectMessageWithin(duration time.Duration, message messaging.Message)
	// ExpectNoMessage asserts that no message is recorded
	ExpectNoMessage()
	// ExpectNoMessageWithin asserts that no message is recorded within a time duration
	ExpectNoMessageWithin(duration time.Duration)
	// ExpectAnyMessage returns the next recorded message
	ExpectAnyMessage() messaging.Message
	// ExpectAnyMessageWithin returns the next message recorded within a time duration
	ExpectAnyMessageWithin(duration time.Duration) messaging.Message
	// ExpectMessageOfType asserts the type of the next recorded message
	ExpectMessageOfType(messageType reflect.Type)
	// ExpectMessageOfTypeWithin asserts the type of the next recorded message within a time duration
	ExpectMessageOfTypeWithin(duration time.Duration, messageType reflect.Type)
	// Sender returns a sender bound to the probe's receiver
	Sender() messaging.Sender
	// Stop stops the test probe
	Stop()
}

// probe defines the test probe implementation
type probe struct {
	pt *testing.T

	receiver       *messaging.Receiver
	lastMessage    messaging.Message
	messageQueue   chan messaging.Message
	defaultTimeout time.Duration
	timers         *timer.Pool
	stopped        chan struct{}
}

var _ Probe = (*probe)(nil)

// New creates a probe and starts its recording loop.
func New(t *testing.T) Probe {
	p := &probe{
		pt:             t,
		receiver:       messaging.NewReceiver(messaging.WithLogger(log.DiscardLogger)),
		messageQueue:   make(chan messaging.Message, MessagesQueueMax),
		defaultTimeout: DefaultTimeout,
		timers:         timer.NewPool(),
		stopped:        make(chan struct{}),
	}
	go p.record()
	return p
}

// ExpectMessage asserts that the next recorded message equals the expected one
func (x *probe) ExpectMessage(message messaging.Message) {
	x.expectMessage(x.defaultTimeout, message)
}

// ExpectMessageWithin asserts that the next recorded message equals the expected one within a time duration
func (x *probe) ExpectMessageWithin(duration time.Duration, message messaging.Message) {
	x.expectMessage(duration, message)
}

// ExpectNoMessage asserts that no message is recorded
func (x *probe) ExpectNoMessage() {
	x.expectNoMessage(x.defaultTimeout)
}

// ExpectNoMessageWithin asserts that no message is recorded within a time duration
func (x *probe) ExpectNoMessageWithin(duration time.Duration) {
	x.expectNoMessage(duration)
}

// ExpectAnyMessage returns the next recorded message
func (x *probe) ExpectAnyMessage() messaging.Message {
	return x.expectAnyMessage(x.defaultTimeout)
}

// ExpectAnyMessageWithin returns the next message recorded within a time duration
func (x *probe) ExpectAnyMessageWithin(duration time.Duration) messaging.Message {
	return x.expectAnyMessage(duration)
}

// ExpectMessageOfType asserts the type of the next recorded message
func (x *probe) ExpectMessageOfType(messageType reflect.Type) {
	x.expectMessageOfType(x.defaultTimeout, messageType)
}

// ExpectMessageOfTypeWithin asserts the type of the next recorded message within a time duration
func (x *probe) ExpectMessageOfTypeWithin(duration time.Duration, messageType reflect.Type) {
	x.expectMessageOfType(duration, messageType)
}

// Sender returns a sender bound to the probe's receiver. Hand it to the
// code under test so replies land in the probe.
func (x *probe) Sender() messaging.Sender {
	return x.receiver.AsSender()
}

// Stop stops the test probe and waits for its recording loop to exit.
func (x *probe) Stop() {
	x.receiver.AsSender().Send(messaging.Close{})
	timer := x.timers.Get(x.defaultTimeout)
	defer x.timers.Put(timer)
	select {
	case <-x.stopped:
	case <-timer.C:
		require.Fail(x.pt, "probe did not stop in time")
	}
}

// record pumps the probe mailbox into the recording queue until Close
// arrives or the receiver is disposed.
func (x *probe) record() {
	defer close(x.stopped)
	for {
		var done bool
		chain := messaging.Handle(x.receiver.Wait(), func(m messaging.Message) {
			x.messageQueue <- m
		})
		chain = messaging.Handle(chain, func(messaging.Close) {
			done = true
		})
		if err := chain.Run(); err != nil || done {
			return
		}
	}
}

// receiveOne receives one message within a maximum time duration
func (x *probe) receiveOne(max time.Duration) messaging.Message {
	timer := x.timers.Get(max)
	defer x.timers.Put(timer)
	select {
	case m, ok := <-x.messageQueue:
		if !ok {
			return nil
		}
		if m != nil {
			x.lastMessage = m
		}
		return m
	case <-timer.C:
		return nil
	}
}

// expectMessage asserts the expectation of a message within a maximum time duration
func (x *probe) expectMessage(max time.Duration, message messaging.Message) {
	received := x.receiveOne(max)
	require.NotNil(x.pt, received, fmt.Sprintf("timeout (%v) during expectMessage while waiting for %v", max, message))
	require.Equal(x.pt, message, received, fmt.Sprintf("expected %v, found %v", message, received))
}

// expectNoMessage asserts that no message is recorded
func (x *probe) expectNoMessage(max time.Duration) {
	received := x.receiveOne(max)
	require.Nil(x.pt, received, fmt.Sprintf("received unexpected message %v", received))
}

// expectAnyMessage asserts that any message is recorded
func (x *probe) expectAnyMessage(max time.Duration) messaging.Message {
	received := x.receiveOne(max)
	require.NotNil(x.pt, received, fmt.Sprintf("timeout (%v) during expectAnyMessage while waiting", max))
	return received
}

// expectMessageOfType asserts that a message of a given type is recorded within a maximum time duration
func (x *probe) expectMessageOfType(max time.Duration, messageType reflect.Type) {
	received := x.receiveOne(max)
	require.NotNil(x.pt, received, fmt.Sprintf("timeout (%v) during expectMessageOfType while waiting", max))
	receivedType := reflect.TypeOf(received)
	require.True(x.pt, receivedType == messageType, fmt.Sprintf("expected %v, found %v", messageType, receivedType))
}
