package entity

import (
	"time"

	errs "github.com/fbp-works/economy-service/internal/domain/error"
)

// Wallet holds a user's spendable point balance. Exactly one wallet exists
// per user and the balance never goes negative.
type Wallet struct {
	UserID    uint64
	balance   int64
	UpdatedAt time.Time
}

// NewWallet creates an empty wallet for the given user
func NewWallet(userID uint64, now time.Time) *Wallet {
	return &Wallet{
		UserID:    userID,
		balance:   0,
		UpdatedAt: now,
	}
}

// RestoreWallet rebuilds a wallet from stored state
func RestoreWallet(userID uint64, balance int64, updatedAt time.Time) *Wallet {
	return &Wallet{
		UserID:    userID,
		balance:   balance,
		UpdatedAt: updatedAt,
	}
}

// Balance returns the current balance
func (w *Wallet) Balance() int64 {
	return w.balance
}

// Apply adds the signed amount to the balance. It returns
// ErrInsufficientFunds and leaves the balance unchanged when the result
// would be negative.
func (w *Wallet) Apply(amount int64, now time.Time) error {
	next := w.balance + amount
	if next < 0 {
		return errs.NewInsufficientFundsError(w.UserID, -amount, w.balance)
	}

	w.balance = next
	w.UpdatedAt = now
	return nil
}

// CanAfford checks whether the wallet covers the given price
func (w *Wallet) CanAfford(price int64) bool {
	return w.balance >= price
}
