package usecase

import (
	"context"

	"github.com/fbp-works/economy-service/internal/domain/entity"
)

// RegistryUseCase provides get-or-create semantics for users and their
// wallets, keyed by external identity.
type RegistryUseCase interface {
	// GetOrCreate looks a user up by external identity, creating the user
	// and a zero-balance wallet on first encounter. Concurrent calls with
	// the same identity resolve to a single user.
	GetOrCreate(ctx context.Context, externalID string) (*entity.User, error)
}

// WalletUseCase reads balances and applies signed deltas, recording every
// change as an immutable transaction.
type WalletUseCase interface {
	// GetBalance returns the user's current balance
	GetBalance(ctx context.Context, userID uint64) (int64, error)

	// ApplyDelta applies a signed amount to the balance and appends a
	// transaction attributing the change to the actor. Returns the new
	// balance, or ErrInsufficientFunds when the result would be negative.
	ApplyDelta(ctx context.Context, userID uint64, amount int64, actor string) (int64, error)

	// ListTransactions returns the user's balance-change history in
	// append order
	ListTransactions(ctx context.Context, userID uint64) ([]*entity.Transaction, error)
}
