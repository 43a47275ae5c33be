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
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/atomic"

	"github.com/zokli/gotell/log"
	"github.com/zokli/gotell/telemetry"
)

// Receiver is the single owner of a mailbox. It produces Senders bound to
// that mailbox and initiates receive turns through Wait. Receivers are not
// copied; use the pointer NewReceiver returns.
//
// At most one receive turn may be in flight per receiver: a second Wait
// before the previous turn's Run completes panics (the single-consumer
// invariant is a programmer error, not a runtime condition).
type Receiver struct {
	name        string
	mailbox     Mailbox
	logger      log.Logger
	deadLetters *DeadLetters
	telemetry   *telemetry.Telemetry
	metrics     *telemetry.ReceiverMetrics

	turnLive *atomic.Bool
	disposed *atomic.Bool
}

// NewReceiver creates a Receiver with a fresh unbounded mailbox. Use options
// to name it, swap the mailbox, or attach a logger, dead-letter stream or
// telemetry.
func NewReceiver(opts ...Option) *Receiver {
	receiver := &Receiver{
		name:     fmt.Sprintf("receiver-%s", uuid.NewString()),
		logger:   log.DefaultLogger,
		turnLive: atomic.NewBool(false),
		disposed: atomic.NewBool(false),
	}

	// apply the various options
	for _, opt := range opts {
		opt.Apply(receiver)
	}

	if receiver.mailbox == nil {
		receiver.mailbox = NewUnboundedMailbox()
	}

	if receiver.telemetry != nil {
		metrics, err := telemetry.NewReceiverMetrics(receiver.telemetry.Meter, receiver.mailbox.Len)
		if err != nil {
			receiver.logger.Errorf("failed to install metrics on receiver=(%s): %v", receiver.name, err)
		}
		receiver.metrics = metrics
	}

	return receiver
}

// Name returns the receiver name.
func (r *Receiver) Name() string {
	return r.name
}

// AsSender produces a Sender bound to this receiver's mailbox.
func (r *Receiver) AsSender() Sender {
	return Sender{mailbox: r.mailbox}
}

// Wait begins a receive turn and returns the base dispatcher of a new chain.
// Register cases with Handle and execute the turn with Run on the final
// link. The base dispatcher alone already forms a valid turn that only
// recognizes Close.
//
// Wait panics if the previous turn is still live: either its Run has not
// completed, or the chain was abandoned without running.
func (r *Receiver) Wait() *Dispatcher {
	if !r.turnLive.CompareAndSwap(false, true) {
		panic(fmt.Sprintf("messaging: receive turn already in progress on receiver=(%s)", r.name))
	}
	return &Dispatcher{receiver: r}
}

// Dispose shuts the mailbox down, discarding buffered messages and releasing
// a consumer blocked in a turn (its Run returns ErrClosed). Senders bound to
// this receiver drop from now on. Dispose is idempotent. Orderly shutdown
// does not require it: delivering Close is the in-band way to stop an agent;
// Dispose is the hard stop for teardown paths.
func (r *Receiver) Dispose() {
	if r.disposed.CompareAndSwap(false, true) {
		r.mailbox.Dispose()
	}
}

// endTurn releases the single-turn guard. Called by Run exactly once per
// chain, panics included.
func (r *Receiver) endTurn() {
	r.turnLive.Store(false)
}

// drop records a message no case of the current turn matched: consumed,
// logged, counted and dead-lettered, never redelivered.
func (r *Receiver) drop(msg Message) {
	r.logger.Debugf("receiver=(%s) dropping unhandled message type=(%T)", r.name, msg)
	if r.metrics != nil {
		r.metrics.UnhandledCount.Add(context.Background(), 1)
	}
	if r.deadLetters != nil {
		r.deadLetters.publish(r.name, msg)
	}
}
