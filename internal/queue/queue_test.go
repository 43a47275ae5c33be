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

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue(t *testing.T) {
	t.Run("With Push then Pop in FIFO order", func(t *testing.T) {
		q := New[int]()
		require.True(t, q.IsEmpty())
		for i := 0; i < 100; i++ {
			require.True(t, q.Push(i))
		}
		require.Equal(t, 100, q.Len())
		for i := 0; i < 100; i++ {
			item, ok := q.Pop()
			require.True(t, ok)
			require.Equal(t, i, item)
		}
		_, ok := q.Pop()
		require.False(t, ok)
		assert.True(t, q.IsEmpty())
	})
	t.Run("With Pop on empty queue", func(t *testing.T) {
		q := New[string]()
		item, ok := q.Pop()
		require.False(t, ok)
		assert.Empty(t, item)
	})
	t.Run("With Wait returning an already buffered item", func(t *testing.T) {
		q := New[string]()
		require.True(t, q.Push("hello"))
		item, ok := q.Wait()
		require.True(t, ok)
		assert.Equal(t, "hello", item)
	})
	t.Run("With Wait blocking until Push", func(t *testing.T) {
		q := New[int]()
		got := make(chan int, 1)
		go func() {
			item, ok := q.Wait()
			require.True(t, ok)
			got <- item
		}()

		// the consumer must still be blocked at this point
		select {
		case <-got:
			t.Fatal("Wait returned before any Push")
		case <-time.After(50 * time.Millisecond):
		}

		require.True(t, q.Push(42))
		select {
		case item := <-got:
			assert.Equal(t, 42, item)
		case <-time.After(time.Second):
			t.Fatal("Wait did not observe the pushed item")
		}
	})
	t.Run("With Close releasing blocked waiters", func(t *testing.T) {
		q := New[int]()
		done := make(chan struct{})
		go func() {
			_, ok := q.Wait()
			require.False(t, ok)
			close(done)
		}()

		time.Sleep(50 * time.Millisecond)
		q.Close()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Close did not release the waiter")
		}
		assert.True(t, q.IsClosed())
	})
	t.Run("With Push after Close", func(t *testing.T) {
		q := New[int]()
		q.Close()
		require.False(t, q.Push(1))
		_, ok := q.Pop()
		assert.False(t, ok)
		// Close is idempotent
		q.Close()
	})
	t.Run("With wraparound and shrink", func(t *testing.T) {
		q := New[int]()
		next := 0
		expected := 0
		// interleave pushes and pops so head and tail wrap around the ring
		for round := 0; round < 50; round++ {
			for i := 0; i < 7; i++ {
				require.True(t, q.Push(next))
				next++
			}
			for i := 0; i < 5; i++ {
				item, ok := q.Pop()
				require.True(t, ok)
				require.Equal(t, expected, item)
				expected++
			}
		}
		// drain the remainder, order must still hold
		for {
			item, ok := q.Pop()
			if !ok {
				break
			}
			require.Equal(t, expected, item)
			expected++
		}
		require.Equal(t, next, expected)
		assert.Equal(t, minCapacity, q.Cap())
	})
	t.Run("With concurrent producers preserving per-producer order", func(t *testing.T) {
		const producers = 8
		const perProducer = 500
		q := New[[2]int]()

		var wg sync.WaitGroup
		wg.Add(producers)
		for p := 0; p < producers; p++ {
			go func(p int) {
				defer wg.Done()
				for i := 0; i < perProducer; i++ {
					require.True(t, q.Push([2]int{p, i}))
				}
			}(p)
		}
		wg.Wait()

		require.Equal(t, producers*perProducer, q.Len())
		lastSeen := make(map[int]int, producers)
		for p := 0; p < producers; p++ {
			lastSeen[p] = -1
		}
		for i := 0; i < producers*perProducer; i++ {
			item, ok := q.Pop()
			require.True(t, ok)
			p, seq := item[0], item[1]
			require.Greater(t, seq, lastSeen[p], "items from producer %d out of order", p)
			lastSeen[p] = seq
		}
	})
}
