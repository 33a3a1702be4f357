package persistence

import (
	"context"

	"github.com/fbp-works/economy-service/internal/domain/entity"
)

// ItemRepository defines methods to manage the shop catalog
type ItemRepository interface {
	// GetByID retrieves an item by ID
	//
	// Possible errors:
	// - ErrItemNotFound: If the item doesn't exist
	// - ErrStoreUnavailable: If the store fails
	GetByID(ctx context.Context, id uint64) (*entity.Item, error)

	// GetByName retrieves an item by exact name
	GetByName(ctx context.Context, name string) (*entity.Item, error)

	// List returns all items ordered by ID
	List(ctx context.Context) ([]*entity.Item, error)

	// Create inserts a new item
	Create(ctx context.Context, item *entity.Item) error

	// Update writes an item's name and price
	Update(ctx context.Context, item *entity.Item) error

	// Delete removes an item from the catalog
	Delete(ctx context.Context, id uint64) error
}

// InventoryRepository manages per-user item holdings keyed by
// (user id, item id)
type InventoryRepository interface {
	// GetQuantity returns how many of the item the user holds, 0 when no
	// entry exists
	GetQuantity(ctx context.Context, userID, itemID uint64) (int64, error)

	// Upsert writes the entry with last-write-wins semantics on the
	// (user_id, item_id) conflict key. Callers serialize concurrent writers.
	Upsert(ctx context.Context, entry *entity.InventoryEntry) error

	// ListByUserID returns all of a user's holdings with their items
	ListByUserID(ctx context.Context, userID uint64) ([]*entity.InventoryEntry, error)
}

// ItemUsageRepository appends and counts item consumption records
type ItemUsageRepository interface {
	// Create appends a usage record
	Create(ctx context.Context, usage *entity.ItemUsage) error

	// CountByTarget counts usages of the given action against a target
	CountByTarget(ctx context.Context, targetRef, action string) (int64, error)
}
