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

// Sender is a non-owning handle to a receiver's mailbox that permits enqueue
// only. Senders are cheap values: copy them freely, pass them across
// goroutines, and embed them in request messages as the reply-to address.
//
// The zero value is unbound and valid: Send on it silently discards. This is
// the safe placeholder for wiring agents before their peers exist.
type Sender struct {
	mailbox Mailbox
}

// Send enqueues msg on the bound mailbox. It never blocks on the default
// unbounded mailbox and never reports failure: an unbound sender drops the
// message, and so does a send racing the receiver's disposal.
func (s Sender) Send(msg Message) {
	if s.mailbox == nil {
		return
	}
	// a failed enqueue means the receiver is gone; dropping matches the
	// unbound-sender contract
	_ = s.mailbox.Enqueue(msg)
}
