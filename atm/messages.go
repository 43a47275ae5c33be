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

import "github.com/zokli/gotell/messaging"

// Keyboard input shapes, produced by the input loop and consumed by the
// controller.

// CardInserted reports a card for the given account entering the reader.
type CardInserted struct {
	Account string
}

// DigitPressed reports one PIN digit.
type DigitPressed struct {
	Digit rune
}

// ClearLastPressed erases the most recently entered PIN digit.
type ClearLastPressed struct{}

// WithdrawPressed requests a withdrawal of the given amount.
type WithdrawPressed struct {
	Amount int
}

// BalancePressed requests the account balance.
type BalancePressed struct{}

// CancelPressed aborts whatever the controller is currently doing.
type CancelPressed struct{}

// Instructions from the controller to the interface hardware (display and
// cash dispenser).

// DisplayEnterCard prompts for a card.
type DisplayEnterCard struct{}

// DisplayEnterPIN prompts for the PIN.
type DisplayEnterPIN struct{}

// DisplayPINIncorrect reports a rejected PIN.
type DisplayPINIncorrect struct{}

// DisplayWithdrawalOptions offers the withdraw/balance/cancel menu.
type DisplayWithdrawalOptions struct{}

// DisplayInsufficientFunds reports a denied withdrawal.
type DisplayInsufficientFunds struct{}

// DisplayWithdrawalCancelled confirms an aborted withdrawal.
type DisplayWithdrawalCancelled struct{}

// DisplayBalance shows the account balance.
type DisplayBalance struct {
	Amount int
}

// EjectCard returns the card to the user.
type EjectCard struct{}

// IssueMoney dispenses cash.
type IssueMoney struct {
	Amount int
}

// Requests from the controller to the bank. Each request that expects an
// answer carries a ReplyTo sender so the bank can respond without sharing
// any receiver with the controller.

// VerifyPIN asks the bank to check a PIN against an account.
type VerifyPIN struct {
	Account string
	PIN     string
	ReplyTo messaging.Sender
}

// Withdraw asks the bank to approve and debit a withdrawal.
type Withdraw struct {
	Account string
	Amount  int
	ReplyTo messaging.Sender
}

// GetBalance asks the bank for the account balance.
type GetBalance struct {
	Account string
	ReplyTo messaging.Sender
}

// CancelWithdrawal tells the bank a pending withdrawal was abandoned and
// its amount should be re-credited.
type CancelWithdrawal struct {
	Account string
	Amount  int
}

// WithdrawalProcessed tells the bank the cash for an approved withdrawal
// left the machine.
type WithdrawalProcessed struct {
	Account string
	Amount  int
}

// Replies from the bank to the controller.

// PINVerified approves the submitted PIN.
type PINVerified struct{}

// PINIncorrect rejects the submitted PIN.
type PINIncorrect struct{}

// WithdrawOK approves a withdrawal; the bank has debited the amount.
type WithdrawOK struct{}

// WithdrawDenied rejects a withdrawal.
type WithdrawDenied struct{}

// Balance carries the account balance.
type Balance struct {
	Amount int
}
