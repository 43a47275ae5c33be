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

// Mailbox defines the contract for a receiver's message queue.
//
// Concurrency and ordering
//   - Implementations MUST be thread-safe for multiple concurrent producers
//     calling Enqueue.
//   - A receiver consumes from a single goroutine, so implementations SHOULD
//     optimize Dequeue for a single consumer (MPSC).
//   - Ordering is FIFO across all producers for messages whose Enqueue
//     completed, in completion order.
//
// Blocking behavior
//   - Dequeue MUST block while the mailbox is empty and return the head as
//     soon as one is available. It returns ok=false only after Dispose, which
//     is how a blocked consumer learns the mailbox is gone.
//   - Enqueue MUST NOT block on unbounded implementations. Bounded
//     implementations MAY block for backpressure and MUST document it.
//
// Observability
//   - IsEmpty and Len are snapshots and MAY be stale immediately under
//     concurrency; they exist for logging and metrics.
//
// Resource management
//   - Dispose MUST release resources and unblock any waiters. After Dispose,
//     Enqueue returns ErrMailboxClosed and Dequeue returns ok=false.
type Mailbox interface {
	// Enqueue pushes a message into the mailbox.
	Enqueue(msg Message) error
	// Dequeue blocks until a message is available and returns it. ok is false
	// only when the mailbox has been disposed.
	Dequeue() (msg Message, ok bool)
	// IsEmpty reports whether the mailbox currently has no messages.
	IsEmpty() bool
	// Len returns a snapshot of the number of messages in the mailbox.
	Len() int64
	// Dispose releases any resources and unblocks internal waiters. The
	// mailbox MUST NOT be used after Dispose returns.
	Dispose()
}
