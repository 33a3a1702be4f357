package persistence

import (
	"context"

	"github.com/fbp-works/economy-service/internal/domain/entity"
)

// UserRepository defines essential methods to interact with user data
type UserRepository interface {
	// GetByExternalID retrieves a user by their external identity string
	//
	// Possible errors:
	// - ErrUserNotFound: If no user carries the external identity
	// - ErrStoreUnavailable: If the store fails
	GetByExternalID(ctx context.Context, externalID string) (*entity.User, error)

	// CreateWithWallet inserts a user row and its zero-balance wallet as one
	// logical operation. The external identity column carries a unique
	// constraint, so concurrent creators resolve to a single winner.
	//
	// Possible errors:
	// - ErrDuplicateUser: If another creator won the insert race
	// - ErrStoreUnavailable: If the store fails
	CreateWithWallet(ctx context.Context, user *entity.User) (*entity.User, error)
}

// WalletRepository defines methods to read and write wallet balances
type WalletRepository interface {
	// GetByUserID retrieves the wallet for the given user
	//
	// Possible errors:
	// - ErrWalletNotFound: If the user has no wallet row
	// - ErrStoreUnavailable: If the store fails
	GetByUserID(ctx context.Context, userID uint64) (*entity.Wallet, error)

	// UpdateBalance writes the wallet's balance and last-updated timestamp
	//
	// Possible errors:
	// - ErrWalletNotFound: If the user has no wallet row
	// - ErrStoreUnavailable: If the store fails
	UpdateBalance(ctx context.Context, wallet *entity.Wallet) error
}
