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
	"errors"

	gods "github.com/Workiva/go-datastructures/queue"
)

// BoundedMailbox is a bounded, blocking MPSC mailbox backed by a ring
// buffer.
//
// Characteristics
//   - Bounded capacity: the buffer has a fixed size.
//   - Blocking semantics: Enqueue blocks when the mailbox is full until space
//     becomes available or the mailbox is disposed. Dequeue blocks when the
//     mailbox is empty, per the Mailbox contract.
//   - FIFO ordering across producers.
//
// Unlike the unbounded default, Enqueue can block. Use a bounded mailbox
// when producers must feel backpressure instead of growing the queue.
type BoundedMailbox struct {
	underlying *gods.RingBuffer
}

// enforce compilation error
var _ Mailbox = (*BoundedMailbox)(nil)

// NewBoundedMailbox creates a new bounded, blocking mailbox with the given
// capacity. Capacity must be a positive integer.
func NewBoundedMailbox(capacity int) *BoundedMailbox {
	return &BoundedMailbox{
		underlying: gods.NewRingBuffer(uint64(capacity)),
	}
}

// Enqueue inserts a message into the mailbox. It blocks while the mailbox is
// full and returns ErrMailboxClosed once the mailbox has been disposed.
func (mailbox *BoundedMailbox) Enqueue(msg Message) error {
	if err := mailbox.underlying.Put(msg); err != nil {
		if errors.Is(err, gods.ErrDisposed) {
			return ErrMailboxClosed
		}
		return err
	}
	return nil
}

// Dequeue blocks until a message is available and removes the head. ok is
// false only after Dispose.
func (mailbox *BoundedMailbox) Dequeue() (Message, bool) {
	item, err := mailbox.underlying.Get()
	if err != nil {
		return nil, false
	}
	return item, true
}

// IsEmpty reports whether the mailbox currently has no messages.
func (mailbox *BoundedMailbox) IsEmpty() bool {
	return mailbox.underlying.Len() == 0
}

// Len returns the current number of messages in the mailbox.
func (mailbox *BoundedMailbox) Len() int64 {
	return int64(mailbox.underlying.Len())
}

// Dispose releases resources held by the underlying ring buffer and unblocks
// any waiters, producers included. Do not use the mailbox after calling
// Dispose.
func (mailbox *BoundedMailbox) Dispose() {
	mailbox.underlying.Dispose()
}
