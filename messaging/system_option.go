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
	"github.com/zokli/gotell/log"
)

// SystemOption is the interface that applies a configuration option to a System.
type SystemOption interface {
	// Apply sets the SystemOption value of a System.
	Apply(system *System)
}

var _ SystemOption = SystemOptionFunc(nil)

// SystemOptionFunc implements the SystemOption interface.
type SystemOptionFunc func(*System)

// Apply applies the System's option
func (f SystemOptionFunc) Apply(system *System) {
	f(system)
}

// WithSystemLogger sets the logger the system reports lifecycle events through.
func WithSystemLogger(logger log.Logger) SystemOption {
	return SystemOptionFunc(func(system *System) {
		system.logger = logger
	})
}
