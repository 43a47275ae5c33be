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
	"time"
)

// linkState tracks where a chain link is in its lifetime. Links live on a
// single goroutine, so plain assignment is enough.
type linkState int8

const (
	// linkTailPending: just constructed, no successor yet; the active tail.
	linkTailPending linkState = iota
	// linkChained: a successor link was registered; this link is inert.
	linkChained
	// linkDispatching: Run is executing on this link.
	linkDispatching
	// linkTerminal: the turn completed through this link, or it was spent.
	linkTerminal
)

// Dispatcher is one link of a receive turn's handler chain.
//
// Receiver.Wait returns the base link; each Handle call produces a new link
// whose predecessor becomes inert, so only the newest link is the
// active tail. Run on the active tail performs the turn: it pops messages
// and offers each one to the cases tail-first (the most recently registered
// case wins); the first match runs its handler and ends the turn. A message
// no case matches falls through to the base policy: Close ends the turn with
// ErrClosed, anything else is dropped (dead-lettered when a stream is
// attached) and the turn pops again.
//
// Dispatchers are not copied and not shared across goroutines; chaining is
// the only transfer of the active-tail mark. Running or extending an inert
// or spent link is a programmer error and panics.
type Dispatcher struct {
	receiver *Receiver
	prev     *Dispatcher
	// try probes one message against this link's case and runs the handler
	// on a match. nil on the base link, which has no case of its own.
	try   func(msg Message) bool
	state linkState
}

// Handle registers a handler for messages of shape M on the chain ending at
// d and returns the new active tail. The link d becomes inert. Registering a
// shape twice shadows the earlier case; handlers are never merged.
func Handle[M any](d *Dispatcher, handler func(M)) *Dispatcher {
	if d == nil {
		panic("messaging: Handle called with a nil dispatcher")
	}
	if handler == nil {
		panic("messaging: Handle called with a nil handler")
	}
	switch d.state {
	case linkChained:
		panic("messaging: Handle called on a chained dispatcher link")
	case linkDispatching, linkTerminal:
		panic("messaging: Handle called on a spent dispatcher link")
	}

	d.state = linkChained
	return &Dispatcher{
		receiver: d.receiver,
		prev:     d,
		try: func(msg Message) bool {
			m, ok := msg.(M)
			if !ok {
				return false
			}
			handler(m)
			return true
		},
	}
}

// Run executes the receive turn exactly once and must be called on the
// active tail. It blocks until the turn consumes a message one of the cases
// matches (returning nil) or a Close reaches the base policy (returning
// ErrClosed). Messages no case matches are consumed, dropped and replaced by
// a fresh pop, so Run never returns on foreign shapes.
//
// ErrClosed is also returned when the receiver is disposed while the turn
// waits.
func (d *Dispatcher) Run() error {
	switch d.state {
	case linkChained:
		panic("messaging: Run called on a chained dispatcher link; run the newest link")
	case linkDispatching, linkTerminal:
		panic("messaging: Run called on a spent dispatcher link")
	}

	d.state = linkDispatching
	r := d.receiver
	defer func() {
		d.state = linkTerminal
		r.endTurn()
	}()

	for {
		msg, ok := r.mailbox.Dequeue()
		if !ok {
			// disposed while waiting: the receiver is gone, end the turn
			return ErrClosed
		}
		if r.metrics != nil {
			r.metrics.ReceivedCount.Add(context.Background(), 1)
		}

		// offer the message tail-first down the chain
		start := time.Now()
		for link := d; link != nil; link = link.prev {
			if link.try == nil {
				continue
			}
			if link.try(msg) {
				if r.metrics != nil {
					r.metrics.HandledCount.Add(context.Background(), 1)
					r.metrics.HandleDurationHistogram.Record(context.Background(), float64(time.Since(start))/float64(time.Millisecond))
				}
				return nil
			}
		}

		// base policy: Close terminates the turn, any other unmatched shape
		// is dropped and the turn polls again
		if _, ok := msg.(Close); ok {
			r.logger.Debugf("receiver=(%s) received close", r.name)
			return ErrClosed
		}

		r.drop(msg)
	}
}
