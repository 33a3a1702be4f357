package persistence

import (
	"context"

	"github.com/fbp-works/economy-service/internal/domain/entity"
)

// TransactionRepository appends and reads the immutable balance-change log.
// Rows are never updated or deleted.
type TransactionRepository interface {
	// Create appends a new transaction record
	//
	// Possible errors:
	// - ErrStoreUnavailable: If the store fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// ListByUserID returns a user's transactions in append order
	ListByUserID(ctx context.Context, userID uint64) ([]*entity.Transaction, error)

	// SumByUserID returns the sum of a user's transaction amounts.
	// Used by the ledger audit to check the balance invariant.
	SumByUserID(ctx context.Context, userID uint64) (int64, error)
}
