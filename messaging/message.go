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

// Package messaging implements an actor-style message-passing substrate:
// multi-producer/single-consumer mailboxes, cheap copyable senders, and
// per-receive dispatcher chains that match the next message against the
// shapes a consumer declares inline. Shutdown is cooperative and in-band
// through the Close message.
package messaging

// Message is the carrier transported by mailboxes. A message's shape is its
// dynamic type; the payload travels by value, so identity and contents are
// preserved bit-for-bit across the mailbox boundary.
type Message = any

// Close is the in-band shutdown signal. Delivering it to a receiver makes
// the next receive turn return ErrClosed, unwinding the owning agent's run
// loop. It carries no payload.
type Close struct{}
