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
	"github.com/zokli/gotell/eventstream"
)

// deadLettersTopic is the event stream topic dead letters are published to.
const deadLettersTopic = "gotell.deadletters"

// DeadLetter captures a message dropped by a receive turn because none of
// the turn's cases matched its shape. Dropping is the normative behavior;
// the dead-letter stream only makes it observable.
type DeadLetter struct {
	// Receiver is the name of the receiver that dropped the message.
	Receiver string
	// Message is the dropped message, payload intact.
	Message Message
}

// DeadLetters is an in-process pub/sub stream of DeadLetter events. Attach
// one to a receiver with WithDeadLetters; every message a turn drops is then
// published to all subscribers. Publication never blocks the dropping turn.
type DeadLetters struct {
	stream eventstream.Stream
}

// NewDeadLetters creates an instance of DeadLetters
func NewDeadLetters() *DeadLetters {
	return &DeadLetters{
		stream: eventstream.New(),
	}
}

// Subscribe registers a new subscriber to the dead-letter topic. Consume the
// buffered events with the subscriber's Iterator.
func (x *DeadLetters) Subscribe() eventstream.Subscriber {
	subscriber := x.stream.AddSubscriber()
	x.stream.Subscribe(subscriber, deadLettersTopic)
	return subscriber
}

// Unsubscribe detaches the given subscriber from the dead-letter topic and
// shuts it down.
func (x *DeadLetters) Unsubscribe(subscriber eventstream.Subscriber) {
	x.stream.Unsubscribe(subscriber, deadLettersTopic)
	x.stream.RemoveSubscriber(subscriber)
}

// Close shuts the stream and all its subscribers down.
func (x *DeadLetters) Close() {
	x.stream.Close()
}

// publish records one dropped message. Receivers call this during a turn;
// it never blocks.
func (x *DeadLetters) publish(receiverName string, msg Message) {
	x.stream.Publish(deadLettersTopic, &DeadLetter{
		Receiver: receiverName,
		Message:  msg,
	})
}
