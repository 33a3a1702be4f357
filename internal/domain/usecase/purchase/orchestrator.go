package purchase

import (
	"context"
	"fmt"

	"github.com/fbp-works/economy-service/internal/domain/entity"
	coreport "github.com/fbp-works/economy-service/internal/domain/port/core"
	"github.com/fbp-works/economy-service/internal/domain/port/persistence"
	"github.com/fbp-works/economy-service/internal/domain/port/usecase"
)

// Caller-facing messages for expected rejections
const (
	msgInFlight     = "A previous purchase is still being processed. Please wait a moment."
	msgInsufficient = "Not enough points for this purchase."
)

// Orchestrator serializes purchase attempts per (user, item) pair and runs
// validate, deduct and inventory credit as one critical section.
type Orchestrator struct {
	itemRepo      persistence.ItemRepository
	inventoryRepo persistence.InventoryRepository
	wallets       usecase.WalletUseCase
	locks         *KeyedLock
	timeProvider  coreport.TimeProvider
	logger        coreport.Logger
}

// NewOrchestrator creates a purchase orchestrator
func NewOrchestrator(
	itemRepo persistence.ItemRepository,
	inventoryRepo persistence.InventoryRepository,
	wallets usecase.WalletUseCase,
	locks *KeyedLock,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.PurchaseUseCase {
	return &Orchestrator{
		itemRepo:      itemRepo,
		inventoryRepo: inventoryRepo,
		wallets:       wallets,
		locks:         locks,
		timeProvider:  timeProvider,
		logger:        logger,
	}
}

// Purchase attempts to buy one unit of the item for the user. Expected
// rejections (busy key, insufficient funds) come back as Success=false
// with a caller-safe message; infrastructure failures return an error.
func (o *Orchestrator) Purchase(ctx context.Context, userID, itemID uint64) (*usecase.PurchaseResult, error) {
	if !o.locks.TryAcquire(userID, itemID) {
		o.logger.Info("Purchase rejected, key in flight", map[string]any{
			"user_id": userID,
			"item_id": itemID,
		})
		return &usecase.PurchaseResult{
			Success: false,
			Message: msgInFlight,
		}, nil
	}
	defer o.locks.Release(userID, itemID)

	item, err := o.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	balance, err := o.wallets.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	if balance < item.Price {
		o.logger.Info("Purchase rejected, insufficient funds", map[string]any{
			"user_id": userID,
			"item_id": itemID,
			"price":   item.Price,
			"balance": balance,
		})
		return &usecase.PurchaseResult{
			Success:    false,
			Message:    msgInsufficient,
			NewBalance: balance,
		}, nil
	}

	// Read the quantity before the deduct; the upsert below must see a
	// value consistent with this critical section.
	quantity, err := o.inventoryRepo.GetQuantity(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	newBalance, err := o.wallets.ApplyDelta(ctx, userID, -item.Price, fmt.Sprintf("PURCHASE:%d", itemID))
	if err != nil {
		return nil, err
	}

	entry := &entity.InventoryEntry{
		UserID:    userID,
		ItemID:    itemID,
		Quantity:  quantity + 1,
		UpdatedAt: o.timeProvider.Now(),
	}
	if err := o.inventoryRepo.Upsert(ctx, entry); err != nil {
		// The wallet is already debited without the item credited. Accepted
		// for a single-process deployment; a multi-writer deployment needs
		// a compensating transaction here.
		o.logger.Error("Inventory credit failed after wallet deduct", map[string]any{
			"error_type":  "data_integrity",
			"user_id":     userID,
			"item_id":     itemID,
			"price":       item.Price,
			"new_balance": newBalance,
			"error":       err.Error(),
		})
		return nil, err
	}

	o.logger.Info("Purchase completed", map[string]any{
		"user_id":     userID,
		"item_id":     itemID,
		"item_name":   item.Name,
		"price":       item.Price,
		"quantity":    entry.Quantity,
		"new_balance": newBalance,
	})

	return &usecase.PurchaseResult{
		Success:    true,
		Message:    fmt.Sprintf("Purchased %s. Remaining points: %d", item.Name, newBalance),
		NewBalance: newBalance,
	}, nil
}
