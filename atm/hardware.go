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

// Hardware is the interface-hardware agent. It renders display requests
// and cash-dispense requests as log lines, standing in for a physical
// front panel.
type Hardware struct {
	receiver *messaging.Receiver
	logger   log.Logger
}

var _ messaging.Agent = (*Hardware)(nil)

// NewHardware creates the interface hardware agent.
func NewHardware(opts ...HardwareOption) *Hardware {
	hardware := &Hardware{
		logger: log.DefaultLogger,
	}

	// apply the various options
	for _, opt := range opts {
		opt.Apply(hardware)
	}

	hardware.receiver = messaging.NewReceiver(
		messaging.WithName("hardware"),
		messaging.WithLogger(hardware.logger),
	)
	return hardware
}

// Sender returns a sender bound to the hardware's queue.
func (x *Hardware) Sender() messaging.Sender {
	return x.receiver.AsSender()
}

// Run renders display and dispense requests until Close arrives.
func (x *Hardware) Run() error {
	for {
		chain := messaging.Handle(x.receiver.Wait(), func(DisplayEnterCard) {
			x.logger.Info("please insert your card (i)")
		})
		chain = messaging.Handle(chain, func(DisplayEnterPIN) {
			x.logger.Info("please enter your pin (0-9)")
		})
		chain = messaging.Handle(chain, func(DisplayPINIncorrect) {
			x.logger.Info("pin incorrect")
		})
		chain = messaging.Handle(chain, func(DisplayWithdrawalOptions) {
			x.logger.Info("withdraw 50 (w), balance (b) or cancel (c)?")
		})
		chain = messaging.Handle(chain, func(DisplayInsufficientFunds) {
			x.logger.Info("insufficient funds")
		})
		chain = messaging.Handle(chain, func(DisplayWithdrawalCancelled) {
			x.logger.Info("withdrawal cancelled")
		})
		chain = messaging.Handle(chain, func(m DisplayBalance) {
			x.logger.Infof("your balance is %d", m.Amount)
		})
		chain = messaging.Handle(chain, func(EjectCard) {
			x.logger.Info("ejecting card")
		})
		chain = messaging.Handle(chain, func(m IssueMoney) {
			x.logger.Infof("issuing %d", m.Amount)
		})
		if err := chain.Run(); err != nil {
			if errors.Is(err, messaging.ErrClosed) {
				return nil
			}
			return err
		}
	}
}

// Done asks the hardware to stop once the requests already queued have
// been rendered.
func (x *Hardware) Done() {
	x.receiver.AsSender().Send(messaging.Close{})
}
