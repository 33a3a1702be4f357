package persistence

import (
	"context"

	"github.com/fbp-works/economy-service/internal/domain/entity"
)

// QuestRepository defines methods to manage reward definitions
type QuestRepository interface {
	// GetByNumber retrieves a quest by its zero-padded number
	//
	// Possible errors:
	// - ErrQuestNotFound: If no quest carries the number
	// - ErrStoreUnavailable: If the store fails
	GetByNumber(ctx context.Context, number string) (*entity.Quest, error)

	// GetByID retrieves a quest by ID
	GetByID(ctx context.Context, id uint64) (*entity.Quest, error)

	// List returns all quests ordered by quest number
	List(ctx context.Context) ([]*entity.Quest, error)

	// Create inserts a new quest definition
	Create(ctx context.Context, quest *entity.Quest) error

	// Update writes a quest's number, reward and title
	Update(ctx context.Context, quest *entity.Quest) error

	// Delete removes a quest definition
	Delete(ctx context.Context, id uint64) error
}

// WalletAuditRepository lists wallets for the periodic ledger audit
type WalletAuditRepository interface {
	// ListUserIDs returns the user IDs of all wallets
	ListUserIDs(ctx context.Context) ([]uint64, error)
}
