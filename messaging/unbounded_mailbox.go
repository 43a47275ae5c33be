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
	"github.com/zokli/gotell/internal/queue"
)

// UnboundedMailbox is the default mailbox: a growable, blocking MPSC queue.
// Enqueue never blocks and never rejects while the mailbox is live; Dequeue
// blocks until a message arrives. FIFO order is preserved across all
// producers.
type UnboundedMailbox struct {
	underlying *queue.Queue[Message]
}

// enforce compilation error
var _ Mailbox = (*UnboundedMailbox)(nil)

// NewUnboundedMailbox creates an instance of UnboundedMailbox
func NewUnboundedMailbox() *UnboundedMailbox {
	return &UnboundedMailbox{
		underlying: queue.New[Message](),
	}
}

// Enqueue appends a message to the mailbox tail and wakes a blocked consumer.
// It only fails once the mailbox has been disposed.
func (mailbox *UnboundedMailbox) Enqueue(msg Message) error {
	if !mailbox.underlying.Push(msg) {
		return ErrMailboxClosed
	}
	return nil
}

// Dequeue blocks until a message is available and removes the head. ok is
// false only after Dispose.
func (mailbox *UnboundedMailbox) Dequeue() (Message, bool) {
	return mailbox.underlying.Wait()
}

// IsEmpty reports whether the mailbox currently has no messages.
func (mailbox *UnboundedMailbox) IsEmpty() bool {
	return mailbox.underlying.IsEmpty()
}

// Len returns a snapshot of the number of messages in the mailbox.
func (mailbox *UnboundedMailbox) Len() int64 {
	return int64(mailbox.underlying.Len())
}

// Dispose discards buffered messages and releases any blocked consumer.
// Safe to call more than once.
func (mailbox *UnboundedMailbox) Dispose() {
	mailbox.underlying.Close()
}
