// Command encapsulation walks a bank account through deposits and
// withdrawals. The balance is only reachable through the account's methods.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/olehluchkiv/oopconcepts/internal/bank"
	"github.com/olehluchkiv/oopconcepts/internal/logging"
)

func main() {
	logger := logging.New(os.Stderr, slog.LevelWarn)
	if err := run(os.Stdout, logger); err != nil {
		logger.Error("encapsulation demo failed", "error", err)
		os.Exit(1)
	}
}

func run(w io.Writer, logger *slog.Logger) error {
	acct, err := bank.New("Alice Smith", 1000, bank.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("opening account: %w", err)
	}

	fmt.Fprintf(w, "Account holder: %s\n", acct.Holder)
	fmt.Fprintf(w, "Initial balance: %g\n", acct.Balance())

	deposit(w, acct, 500)
	withdraw(w, acct, 200)
	withdraw(w, acct, 1500)

	fmt.Fprintf(w, "Final balance: %g\n", acct.Balance())
	return nil
}

func deposit(w io.Writer, acct *bank.Account, amount float64) {
	bal, err := acct.Deposit(amount)
	if err != nil {
		fmt.Fprintln(w, "Deposit amount must be positive.")
		return
	}
	fmt.Fprintf(w, "Deposited %g. New balance: %g\n", amount, bal)
}

func withdraw(w io.Writer, acct *bank.Account, amount float64) {
	bal, err := acct.Withdraw(amount)
	if err != nil {
		fmt.Fprintln(w, "Invalid withdrawal amount or insufficient funds.")
		return
	}
	fmt.Fprintf(w, "Withdrew %g. New balance: %g\n", amount, bal)
}
