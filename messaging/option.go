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
	"github.com/zokli/gotell/log"
	"github.com/zokli/gotell/telemetry"
)

// Option is the interface that applies a configuration option to a Receiver.
type Option interface {
	// Apply sets the Option value of a Receiver.
	Apply(receiver *Receiver)
}

var _ Option = OptionFunc(nil)

// OptionFunc implements the Option interface.
type OptionFunc func(*Receiver)

// Apply applies the Receiver's option
func (f OptionFunc) Apply(receiver *Receiver) {
	f(receiver)
}

// WithName sets the receiver name used in logs, dead letters and telemetry.
func WithName(name string) Option {
	return OptionFunc(func(receiver *Receiver) {
		receiver.name = name
	})
}

// WithMailbox sets a custom mailbox, e.g. a BoundedMailbox for backpressure.
// The default is an UnboundedMailbox.
func WithMailbox(mailbox Mailbox) Option {
	return OptionFunc(func(receiver *Receiver) {
		receiver.mailbox = mailbox
	})
}

// WithLogger sets the logger receive turns log through.
func WithLogger(logger log.Logger) Option {
	return OptionFunc(func(receiver *Receiver) {
		receiver.logger = logger
	})
}

// WithDeadLetters attaches a dead-letter stream; messages dropped by receive
// turns are published to it.
func WithDeadLetters(deadLetters *DeadLetters) Option {
	return OptionFunc(func(receiver *Receiver) {
		receiver.deadLetters = deadLetters
	})
}

// WithTelemetry enables the OpenTelemetry instruments for this receiver.
func WithTelemetry(tel *telemetry.Telemetry) Option {
	return OptionFunc(func(receiver *Receiver) {
		receiver.telemetry = tel
	})
}
