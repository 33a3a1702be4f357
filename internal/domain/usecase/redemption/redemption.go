package redemption

import (
	"context"

	"github.com/fbp-works/economy-service/internal/domain/entity"
	errs "github.com/fbp-works/economy-service/internal/domain/error"
	coreport "github.com/fbp-works/economy-service/internal/domain/port/core"
	"github.com/fbp-works/economy-service/internal/domain/port/persistence"
	"github.com/fbp-works/economy-service/internal/domain/port/usecase"
)

// ActionVote is the usage action recorded when a vote ticket is spent.
const ActionVote = "vote"

// Service consumes held items against targets and records each usage.
// Purchases only ever increment inventory; redemption is the one flow
// that spends it.
type Service struct {
	itemRepo      persistence.ItemRepository
	inventoryRepo persistence.InventoryRepository
	usageRepo     persistence.ItemUsageRepository
	timeProvider  coreport.TimeProvider
	logger        coreport.Logger
}

// NewService creates a redemption service
func NewService(
	itemRepo persistence.ItemRepository,
	inventoryRepo persistence.InventoryRepository,
	usageRepo persistence.ItemUsageRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.RedemptionUseCase {
	return &Service{
		itemRepo:      itemRepo,
		inventoryRepo: inventoryRepo,
		usageRepo:     usageRepo,
		timeProvider:  timeProvider,
		logger:        logger,
	}
}

// Redeem consumes one unit of the named item held by the user, records the
// usage against the target and returns the remaining quantity plus the
// target's running usage count.
func (s *Service) Redeem(ctx context.Context, userID uint64, itemName, targetRef, action string) (*usecase.RedemptionResult, error) {
	item, err := s.itemRepo.GetByName(ctx, itemName)
	if err != nil {
		return nil, err
	}

	quantity, err := s.inventoryRepo.GetQuantity(ctx, userID, item.ID)
	if err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, errs.ErrNotEnoughItems
	}

	now := s.timeProvider.Now()
	entry := &entity.InventoryEntry{
		UserID:    userID,
		ItemID:    item.ID,
		Quantity:  quantity - 1,
		UpdatedAt: now,
	}
	if err := s.inventoryRepo.Upsert(ctx, entry); err != nil {
		return nil, err
	}

	usage := &entity.ItemUsage{
		UserID:    userID,
		ItemID:    item.ID,
		TargetRef: targetRef,
		Action:    action,
		CreatedAt: now,
	}
	if err := s.usageRepo.Create(ctx, usage); err != nil {
		// The item was already consumed; surface loudly so the history can
		// be reconciled by hand.
		s.logger.Error("Usage record failed after item consumed", map[string]any{
			"error_type": "data_integrity",
			"user_id":    userID,
			"item_id":    item.ID,
			"target_ref": targetRef,
			"error":      err.Error(),
		})
		return nil, err
	}

	uses, err := s.usageRepo.CountByTarget(ctx, targetRef, action)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Item redeemed", map[string]any{
		"user_id":    userID,
		"item_name":  item.Name,
		"target_ref": targetRef,
		"action":     action,
		"remaining":  entry.Quantity,
	})

	return &usecase.RedemptionResult{
		Remaining:  entry.Quantity,
		TargetUses: uses,
	}, nil
}

// CountUses returns how many times an action was recorded against a target
func (s *Service) CountUses(ctx context.Context, targetRef, action string) (int64, error) {
	return s.usageRepo.CountByTarget(ctx, targetRef, action)
}
