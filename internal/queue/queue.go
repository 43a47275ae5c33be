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

package queue

import "sync"

// minCapacity is the smallest ring the queue allocates.
// Must be a power of two so indices can wrap with a bitmask: x % n == x & (n - 1).
const minCapacity = 16

// Queue is an unbounded FIFO queue backed by a growable ring buffer and
// guarded by a mutex plus condition variable.
//
// Characteristics:
//   - Push never blocks and never fails while the queue is open.
//   - Wait blocks until an item is available or the queue is closed; the
//     wait predicate is re-checked in a loop, so spurious wakeups are harmless.
//   - FIFO ordering is preserved across all producers: items are returned in
//     the order their Push calls completed.
//
// Safe for any number of concurrent producers and consumers.
type Queue[T any] struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []T
	head   int
	tail   int
	count  int
	closed bool
}

// New creates an empty Queue.
func New[T any]() *Queue[T] {
	q := &Queue[T]{items: make([]T, minCapacity)}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Push appends item at the tail of the queue and wakes one waiter.
// It returns false when the queue has been closed; in that case the item
// is dropped.
func (q *Queue[T]) Push(item T) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	if q.count == len(q.items) {
		q.resize(q.count << 1)
	}
	q.items[q.tail] = item
	q.tail = (q.tail + 1) & (len(q.items) - 1)
	q.count++
	q.cond.Signal()
	q.mu.Unlock()
	return true
}

// Wait blocks until an item is available, removes it from the head and
// returns it. It returns the zero value and false once the queue has been
// closed and no item could be delivered.
func (q *Queue[T]) Wait() (T, bool) {
	q.mu.Lock()
	for q.count == 0 && !q.closed {
		q.cond.Wait()
	}
	if q.count == 0 {
		var zero T
		q.mu.Unlock()
		return zero, false
	}
	item := q.remove()
	q.mu.Unlock()
	return item, true
}

// Pop removes and returns the head of the queue without blocking.
// It returns false when the queue is empty or closed.
func (q *Queue[T]) Pop() (T, bool) {
	q.mu.Lock()
	if q.count == 0 {
		var zero T
		q.mu.Unlock()
		return zero, false
	}
	item := q.remove()
	q.mu.Unlock()
	return item, true
}

// Close closes the queue, discards any buffered items and releases every
// goroutine blocked in Wait. Pushing to a closed queue drops the item.
// Close is idempotent.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	q.items = nil
	q.head, q.tail, q.count = 0, 0, 0
	q.cond.Broadcast()
}

// IsClosed returns true when the queue has been closed. Only a true result
// is definitive; the queue may be closed right after the call returns.
func (q *Queue[T]) IsClosed() bool {
	q.mu.Lock()
	closed := q.closed
	q.mu.Unlock()
	return closed
}

// Len returns the number of buffered items.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	count := q.count
	q.mu.Unlock()
	return count
}

// IsEmpty returns true when the queue holds no items.
func (q *Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}

// Cap returns the current ring capacity.
func (q *Queue[T]) Cap() int {
	q.mu.Lock()
	capacity := cap(q.items)
	q.mu.Unlock()
	return capacity
}

// remove pops the head item. Caller must hold the lock and have checked
// that the queue is non-empty.
func (q *Queue[T]) remove() T {
	item := q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head = (q.head + 1) & (len(q.items) - 1)
	q.count--

	// shrink once the ring is a quarter full to keep idle queues small
	if len(q.items) > minCapacity && (q.count<<2) == len(q.items) {
		q.resize(q.count << 1)
	}
	return item
}

// resize replaces the ring with one of the given capacity. Caller must hold
// the lock; capacity must be a power of two no smaller than count.
func (q *Queue[T]) resize(capacity int) {
	if capacity < minCapacity {
		capacity = minCapacity
	}
	items := make([]T, capacity)
	if q.tail > q.head {
		copy(items, q.items[q.head:q.tail])
	} else {
		n := copy(items, q.items[q.head:])
		copy(items[n:], q.items[:q.tail])
	}
	q.head = 0
	q.tail = q.count
	q.items = items
}
