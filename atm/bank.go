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

import (
	"errors"

	"github.com/zokli/gotell/log"
	"github.com/zokli/gotell/messaging"
)

// demo ledger entry seeded into every bank
const (
	defaultAccount = "acc1234"
	defaultPIN     = "1234"
	defaultBalance = 123
)

// account is one ledger entry. pending tracks amounts debited by approved
// withdrawals the controller has not finalized yet, so a cancellation can
// re-credit them.
type account struct {
	pin     string
	balance int
	pending int
}

// Bank is the back-end agent: an in-memory ledger answering PIN, withdraw
// and balance requests through each request's ReplyTo sender.
type Bank struct {
	receiver *messaging.Receiver
	logger   log.Logger
	accounts map[string]*account
}

var _ messaging.Agent = (*Bank)(nil)

// NewBank creates a bank seeded with the demo account. WithAccount adds or
// replaces ledger entries.
func NewBank(opts ...BankOption) *Bank {
	bank := &Bank{
		logger: log.DefaultLogger,
		accounts: map[string]*account{
			defaultAccount: {pin: defaultPIN, balance: defaultBalance},
		},
	}

	// apply the various options
	for _, opt := range opts {
		opt.Apply(bank)
	}

	bank.receiver = messaging.NewReceiver(
		messaging.WithName("bank"),
		messaging.WithLogger(bank.logger),
	)
	return bank
}

// Sender returns a sender bound to the bank's queue.
func (x *Bank) Sender() messaging.Sender {
	return x.receiver.AsSender()
}

// Run consumes bank requests until Close arrives. The ledger is only ever
// touched from this loop.
func (x *Bank) Run() error {
	for {
		chain := messaging.Handle(x.receiver.Wait(), x.verifyPIN)
		chain = messaging.Handle(chain, x.withdraw)
		chain = messaging.Handle(chain, x.getBalance)
		chain = messaging.Handle(chain, x.cancelWithdrawal)
		chain = messaging.Handle(chain, x.withdrawalProcessed)
		if err := chain.Run(); err != nil {
			if errors.Is(err, messaging.ErrClosed) {
				return nil
			}
			return err
		}
	}
}

// Done asks the bank to stop once the requests already queued have been
// answered.
func (x *Bank) Done() {
	x.receiver.AsSender().Send(messaging.Close{})
}

func (x *Bank) verifyPIN(m VerifyPIN) {
	entry, found := x.accounts[m.Account]
	if !found || entry.pin != m.PIN {
		x.logger.Infof("bank rejected pin for account=(%s)", m.Account)
		m.ReplyTo.Send(PINIncorrect{})
		return
	}
	m.ReplyTo.Send(PINVerified{})
}

func (x *Bank) withdraw(m Withdraw) {
	entry, found := x.accounts[m.Account]
	if !found || entry.balance < m.Amount {
		m.ReplyTo.Send(WithdrawDenied{})
		return
	}
	entry.balance -= m.Amount
	entry.pending += m.Amount
	m.ReplyTo.Send(WithdrawOK{})
}

func (x *Bank) getBalance(m GetBalance) {
	var amount int
	if entry, found := x.accounts[m.Account]; found {
		amount = entry.balance
	}
	m.ReplyTo.Send(Balance{Amount: amount})
}

// cancelWithdrawal re-credits the pending part of a withdrawal the
// controller abandoned. A cancel arriving after the withdrawal was
// finalized re-credits nothing.
func (x *Bank) cancelWithdrawal(m CancelWithdrawal) {
	entry, found := x.accounts[m.Account]
	if !found {
		return
	}
	amount := min(m.Amount, entry.pending)
	entry.pending -= amount
	entry.balance += amount
}

// withdrawalProcessed finalizes an approved withdrawal: the debited amount
// can no longer be re-credited by a late cancel.
func (x *Bank) withdrawalProcessed(m WithdrawalProcessed) {
	entry, found := x.accounts[m.Account]
	if !found {
		return
	}
	entry.pending -= min(m.Amount, entry.pending)
}
