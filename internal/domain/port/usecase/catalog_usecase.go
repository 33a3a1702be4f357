package usecase

import (
	"context"

	"github.com/fbp-works/economy-service/internal/domain/entity"
)

// InventoryLine is one row of a user's inventory view.
type InventoryLine struct {
	ItemName string
	Price    int64
	Quantity int64
}

// InventoryView is a user's balance plus their item holdings.
type InventoryView struct {
	Balance int64
	Items   []InventoryLine
}

// CatalogUseCase covers administrative edits of items and quests plus the
// inventory view.
type CatalogUseCase interface {
	ListItems(ctx context.Context) ([]*entity.Item, error)
	AddItem(ctx context.Context, name string, price int64) (*entity.Item, error)
	EditItem(ctx context.Context, id uint64, name string, price int64) (*entity.Item, error)
	RemoveItem(ctx context.Context, id uint64) error

	ListQuests(ctx context.Context) ([]*entity.Quest, error)
	AddQuest(ctx context.Context, number string, reward int64, title string) (*entity.Quest, error)
	EditQuest(ctx context.Context, id uint64, number string, reward int64, title string) (*entity.Quest, error)
	RemoveQuest(ctx context.Context, id uint64) error

	GetInventory(ctx context.Context, userID uint64) (*InventoryView, error)
}

// RedemptionResult reports one consumed item and the running usage count
// for the target.
type RedemptionResult struct {
	Remaining  int64
	TargetUses int64
}

// RedemptionUseCase consumes one held item against a target and records
// the usage, e.g. spending a vote ticket on a message.
type RedemptionUseCase interface {
	Redeem(ctx context.Context, userID uint64, itemName, targetRef, action string) (*RedemptionResult, error)
	CountUses(ctx context.Context, targetRef, action string) (int64, error)
}
