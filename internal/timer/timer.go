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

// Package timer provides a pool of reusable timers for code that waits with
// a deadline in a tight loop.
package timer

import (
	"math"
	"sync"
	"time"
)

// never parks pooled timers on an effectively infinite duration so a timer
// forgotten between Put and Get cannot fire.
const never = time.Duration(math.MaxInt64)

// Pool recycles timers across repeated deadline waits.
type Pool struct {
	pool sync.Pool
}

// NewPool creates a timer pool.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return time.NewTimer(never)
			},
		},
	}
}

// Get returns a timer armed with d. Put it back once it fired or is no
// longer needed.
func (p *Pool) Get(d time.Duration) *time.Timer {
	timer := p.pool.Get().(*time.Timer)
	timer.Reset(d)
	return timer
}

// Put stops the timer and parks it for reuse. The timer must not be read
// after Put returns.
func (p *Pool) Put(timer *time.Timer) {
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	p.pool.Put(timer)
}
