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

package atm

import "github.com/zokli/gotell/log"

// Option configures the ATM controller.
type Option interface {
	// Apply sets the Option value of an ATM.
	Apply(machine *ATM)
}

var _ Option = OptionFunc(nil)

// OptionFunc implements the Option interface.
type OptionFunc func(machine *ATM)

func (f OptionFunc) Apply(machine *ATM) {
	f(machine)
}

// WithLogger sets the controller's logger.
func WithLogger(logger log.Logger) Option {
	return OptionFunc(func(machine *ATM) {
		machine.logger = logger
	})
}

// BankOption configures a Bank.
type BankOption interface {
	// Apply sets the BankOption value of a Bank.
	Apply(bank *Bank)
}

var _ BankOption = BankOptionFunc(nil)

// BankOptionFunc implements the BankOption interface.
type BankOptionFunc func(bank *Bank)

func (f BankOptionFunc) Apply(bank *Bank) {
	f(bank)
}

// WithBankLogger sets the bank's logger.
func WithBankLogger(logger log.Logger) BankOption {
	return BankOptionFunc(func(bank *Bank) {
		bank.logger = logger
	})
}

// WithAccount adds a ledger entry, replacing any existing entry with the
// same number.
func WithAccount(number, pin string, balance int) BankOption {
	return BankOptionFunc(func(bank *Bank) {
		bank.accounts[number] = &account{pin: pin, balance: balance}
	})
}

// HardwareOption configures a Hardware agent.
type HardwareOption interface {
	// Apply sets the HardwareOption value of a Hardware.
	Apply(hardware *Hardware)
}

var _ HardwareOption = HardwareOptionFunc(nil)

// HardwareOptionFunc implements the HardwareOption interface.
type HardwareOptionFunc func(hardware *Hardware)

func (f HardwareOptionFunc) Apply(hardware *Hardware) {
	f(hardware)
}

// WithHardwareLogger sets the hardware's logger.
func WithHardwareLogger(logger log.Logger) HardwareOption {
	return HardwareOptionFunc(func(hardware *Hardware) {
		hardware.logger = logger
	})
}
