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

package main

import (
	"bufio"
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/zokli/gotell/atm"
	"github.com/zokli/gotell/log"
	"github.com/zokli/gotell/messaging"
)

const (
	// account bound to the demo card
	demoAccount = "acc1234"
	// amount the single withdraw key requests
	withdrawalAmount = 50
)

// rootCmd represents the teller machine demo command
var rootCmd = &cobra.Command{
	Use:   "atm",
	Short: "Run the teller machine demo",
	Long: `atm wires a teller machine controller, a bank back end and the
interface hardware together as message-passing agents and drives the
controller with single keystrokes from standard input.

Keys: i inserts the demo card, 0-9 type a pin digit, w withdraws 50,
b shows the balance, c cancels, q quits.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := log.DefaultLogger

		bank := atm.NewBank(atm.WithBankLogger(logger))
		hardware := atm.NewHardware(atm.WithHardwareLogger(logger))
		machine := atm.NewATM(bank.Sender(), hardware.Sender(), atm.WithLogger(logger))

		system := messaging.NewSystem(messaging.WithSystemLogger(logger))
		// registration order fixes the shutdown order: the bank is told
		// to stop first and the interface hardware last
		if err := system.Register("hardware", hardware); err != nil {
			logger.Fatal(err)
		}
		if err := system.Register("atm", machine); err != nil {
			logger.Fatal(err)
		}
		if err := system.Register("bank", bank); err != nil {
			logger.Fatal(err)
		}
		if err := system.Start(cmd.Context()); err != nil {
			logger.Fatal(err)
		}

		keyboard(machine.Sender())

		if err := system.Stop(context.Background()); err != nil {
			logger.Fatal(err)
		}
	},
}

// keyboard turns keystrokes into controller messages until the customer
// quits or stdin closes.
func keyboard(keys messaging.Sender) {
	reader := bufio.NewReader(os.Stdin)
	for {
		c, err := reader.ReadByte()
		if err != nil {
			return
		}
		switch {
		case c >= '0' && c <= '9':
			keys.Send(atm.DigitPressed{Digit: rune(c)})
		case c == 'b' || c == 'B':
			keys.Send(atm.BalancePressed{})
		case c == 'w' || c == 'W':
			keys.Send(atm.WithdrawPressed{Amount: withdrawalAmount})
		case c == 'c' || c == 'C':
			keys.Send(atm.CancelPressed{})
		case c == 'i' || c == 'I':
			keys.Send(atm.CardInserted{Account: demoAccount})
		case c == 'q' || c == 'Q':
			return
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
