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

// Package atm is a worked example of the messaging substrate: an automated
// teller machine controller, a bank back end and the interface hardware
// (card reader, display, cash dispenser) composed as three agents that
// communicate only through senders.
package atm

import (
	"errors"

	"github.com/zokli/gotell/log"
	"github.com/zokli/gotell/messaging"
)

// pinLength is the number of digits a PIN must reach before it is sent to
// the bank for verification.
const pinLength = 4

// stateFn is one controller state: a single receive turn that returns the
// state to run next.
type stateFn func() (stateFn, error)

// ATM is the controller agent. Keyboard input and bank replies arrive on
// its one receiver; each state is a receive turn that registers exactly the
// shapes the state cares about, so stale input from an earlier state is
// dropped instead of derailing the conversation.
type ATM struct {
	receiver *messaging.Receiver
	bank     messaging.Sender
	hardware messaging.Sender
	logger   log.Logger

	account          string
	pin              string
	withdrawalAmount int
}

var _ messaging.Agent = (*ATM)(nil)

// NewATM creates the controller. The bank and hardware senders address its
// two collaborators; the bank answers through the ReplyTo sender the
// controller embeds in each request.
func NewATM(bank messaging.Sender, hardware messaging.Sender, opts ...Option) *ATM {
	machine := &ATM{
		bank:     bank,
		hardware: hardware,
		logger:   log.DefaultLogger,
	}

	// apply the various options
	for _, opt := range opts {
		opt.Apply(machine)
	}

	machine.receiver = messaging.NewReceiver(
		messaging.WithName("atm"),
		messaging.WithLogger(machine.logger),
	)
	return machine
}

// Sender returns a sender bound to the controller's queue; the keyboard
// loop feeds key shapes through it.
func (x *ATM) Sender() messaging.Sender {
	return x.receiver.AsSender()
}

// Run drives the state machine, one receive turn per state, until Close
// arrives.
func (x *ATM) Run() error {
	state := stateFn(x.waitingForCard)
	for {
		next, err := state()
		if err != nil {
			if errors.Is(err, messaging.ErrClosed) {
				return nil
			}
			return err
		}
		state = next
	}
}

// Done asks the controller to stop once the messages already queued have
// been worked off.
func (x *ATM) Done() {
	x.receiver.AsSender().Send(messaging.Close{})
}

// waitingForCard prompts for a card and waits for one.
func (x *ATM) waitingForCard() (stateFn, error) {
	x.logger.Debug("atm state=(waiting_for_card)")
	x.hardware.Send(DisplayEnterCard{})

	var next stateFn
	chain := messaging.Handle(x.receiver.Wait(), func(m CardInserted) {
		x.account = m.Account
		x.pin = ""
		x.hardware.Send(DisplayEnterPIN{})
		next = x.gettingPIN
	})
	if err := chain.Run(); err != nil {
		return nil, err
	}
	return next, nil
}

// gettingPIN accumulates digits until the PIN is complete, honoring digit
// erasure and cancellation.
func (x *ATM) gettingPIN() (stateFn, error) {
	x.logger.Debug("atm state=(getting_pin)")

	var next stateFn = x.gettingPIN
	chain := messaging.Handle(x.receiver.Wait(), func(m DigitPressed) {
		x.pin += string(m.Digit)
		if len(x.pin) == pinLength {
			x.bank.Send(VerifyPIN{Account: x.account, PIN: x.pin, ReplyTo: x.receiver.AsSender()})
			next = x.verifyingPIN
		}
	})
	chain = messaging.Handle(chain, func(ClearLastPressed) {
		if len(x.pin) > 0 {
			x.pin = x.pin[:len(x.pin)-1]
		}
	})
	chain = messaging.Handle(chain, func(CancelPressed) {
		next = x.doneProcessing
	})
	if err := chain.Run(); err != nil {
		return nil, err
	}
	return next, nil
}

// verifyingPIN waits for the bank's verdict on the submitted PIN.
func (x *ATM) verifyingPIN() (stateFn, error) {
	x.logger.Debug("atm state=(verifying_pin)")

	var next stateFn
	chain := messaging.Handle(x.receiver.Wait(), func(PINVerified) {
		next = x.waitForAction
	})
	chain = messaging.Handle(chain, func(PINIncorrect) {
		x.hardware.Send(DisplayPINIncorrect{})
		next = x.doneProcessing
	})
	chain = messaging.Handle(chain, func(CancelPressed) {
		next = x.doneProcessing
	})
	if err := chain.Run(); err != nil {
		return nil, err
	}
	return next, nil
}

// waitForAction offers the menu and waits for a choice.
func (x *ATM) waitForAction() (stateFn, error) {
	x.logger.Debug("atm state=(wait_for_action)")
	x.hardware.Send(DisplayWithdrawalOptions{})

	var next stateFn
	chain := messaging.Handle(x.receiver.Wait(), func(m WithdrawPressed) {
		x.withdrawalAmount = m.Amount
		x.bank.Send(Withdraw{Account: x.account, Amount: m.Amount, ReplyTo: x.receiver.AsSender()})
		next = x.processWithdrawal
	})
	chain = messaging.Handle(chain, func(BalancePressed) {
		x.bank.Send(GetBalance{Account: x.account, ReplyTo: x.receiver.AsSender()})
		next = x.processBalance
	})
	chain = messaging.Handle(chain, func(CancelPressed) {
		next = x.doneProcessing
	})
	if err := chain.Run(); err != nil {
		return nil, err
	}
	return next, nil
}

// processWithdrawal waits for the bank to approve or deny the withdrawal.
// The user may still cancel while the request is pending; the bank is then
// told to re-credit the amount.
func (x *ATM) processWithdrawal() (stateFn, error) {
	x.logger.Debug("atm state=(process_withdrawal)")

	var next stateFn
	chain := messaging.Handle(x.receiver.Wait(), func(WithdrawOK) {
		x.hardware.Send(IssueMoney{Amount: x.withdrawalAmount})
		x.bank.Send(WithdrawalProcessed{Account: x.account, Amount: x.withdrawalAmount})
		next = x.doneProcessing
	})
	chain = messaging.Handle(chain, func(WithdrawDenied) {
		x.hardware.Send(DisplayInsufficientFunds{})
		next = x.doneProcessing
	})
	chain = messaging.Handle(chain, func(CancelPressed) {
		x.bank.Send(CancelWithdrawal{Account: x.account, Amount: x.withdrawalAmount})
		x.hardware.Send(DisplayWithdrawalCancelled{})
		next = x.doneProcessing
	})
	if err := chain.Run(); err != nil {
		return nil, err
	}
	return next, nil
}

// processBalance waits for the balance and shows it.
func (x *ATM) processBalance() (stateFn, error) {
	x.logger.Debug("atm state=(process_balance)")

	var next stateFn
	chain := messaging.Handle(x.receiver.Wait(), func(m Balance) {
		x.hardware.Send(DisplayBalance{Amount: m.Amount})
		next = x.waitForAction
	})
	chain = messaging.Handle(chain, func(CancelPressed) {
		next = x.doneProcessing
	})
	if err := chain.Run(); err != nil {
		return nil, err
	}
	return next, nil
}

// doneProcessing ejects the card and starts the conversation over. It is
// the one state that performs no receive.
func (x *ATM) doneProcessing() (stateFn, error) {
	x.logger.Debug("atm state=(done_processing)")
	x.hardware.Send(EjectCard{})
	return x.waitingForCard, nil
}
