// Package bank provides a bank account whose balance can only change through
// validated deposits and withdrawals.
package bank

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
)

var (
	// ErrInvalidAmount indicates a non-positive or non-finite amount.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrInsufficientFunds indicates a withdrawal larger than the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrRejectedWithdrawal matches every error returned by Withdraw.
	ErrRejectedWithdrawal = errors.New("invalid withdrawal amount or insufficient funds")
)

// Account holds a balance for a single account holder. The balance is never
// negative.
type Account struct {
	Holder string

	balance float64
	logger  *slog.Logger
}

// Option configures an Account.
type Option func(*Account)

// WithLogger makes the account log accepted and rejected operations.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Account) {
		a.logger = logger
	}
}

// New opens an account for holder with an initial balance.
func New(holder string, initial float64, opts ...Option) (*Account, error) {
	if initial < 0 || math.IsNaN(initial) || math.IsInf(initial, 0) {
		return nil, fmt.Errorf("initial balance %g: %w", initial, ErrInvalidAmount)
	}
	a := &Account{
		Holder:  holder,
		balance: initial,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Balance returns the current balance.
func (a *Account) Balance() float64 {
	return a.balance
}

// Deposit adds amount to the balance and returns the new balance.
func (a *Account) Deposit(amount float64) (float64, error) {
	if !validAmount(amount) {
		a.logger.Warn("deposit rejected", "holder", a.Holder, "amount", amount)
		return a.balance, fmt.Errorf("deposit %g: %w", amount, ErrInvalidAmount)
	}
	a.balance += amount
	a.logger.Debug("deposit accepted", "holder", a.Holder, "amount", amount, "balance", a.balance)
	return a.balance, nil
}

// Withdraw removes amount from the balance and returns the new balance.
// Rejected withdrawals leave the balance unchanged.
func (a *Account) Withdraw(amount float64) (float64, error) {
	var cause error
	switch {
	case !validAmount(amount):
		cause = ErrInvalidAmount
	case amount > a.balance:
		cause = ErrInsufficientFunds
	}
	if cause != nil {
		a.logger.Warn("withdrawal rejected", "holder", a.Holder, "amount", amount, "balance", a.balance, "reason", cause)
		return a.balance, &withdrawError{amount: amount, cause: cause}
	}
	a.balance -= amount
	a.logger.Debug("withdrawal accepted", "holder", a.Holder, "amount", amount, "balance", a.balance)
	return a.balance, nil
}

func validAmount(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

type withdrawError struct {
	amount float64
	cause  error
}

func (e *withdrawError) Error() string {
	return fmt.Sprintf("withdraw %g: %v", e.amount, e.cause)
}

func (e *withdrawError) Unwrap() []error {
	return []error{e.cause, ErrRejectedWithdrawal}
}
