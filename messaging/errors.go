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

import "errors"

var (
	// ErrClosed is returned by a receive turn that consumed a Close message
	// (or whose mailbox was disposed while it waited). Agent run loops treat
	// it as the orderly shutdown signal, never as a failure.
	ErrClosed = errors.New("receiver is closed")

	// ErrMailboxClosed is returned by Enqueue on a disposed mailbox.
	// Senders swallow it: a send racing a shutdown is an ordinary drop.
	ErrMailboxClosed = errors.New("mailbox is closed")

	// ErrSystemStarted is returned when an operation requires the system to
	// not have been started yet.
	ErrSystemStarted = errors.New("system already started")

	// ErrAgentAlreadyRegistered is returned when registering an agent under a
	// name the system already knows.
	ErrAgentAlreadyRegistered = errors.New("agent already registered")

	// ErrNameRequired is returned when an agent is registered with an empty name.
	ErrNameRequired = errors.New("agent name is required")

	// ErrAgentRequired is returned when a nil agent is registered.
	ErrAgentRequired = errors.New("agent is required")
)
