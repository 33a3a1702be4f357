package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/fbp-works/economy-service/internal/domain/entity"
	errs "github.com/fbp-works/economy-service/internal/domain/error"
	coreport "github.com/fbp-works/economy-service/internal/domain/port/core"
	"github.com/fbp-works/economy-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InventoryRepository implements persistence.InventoryRepository using GORM
type InventoryRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewInventoryRepository creates a new InventoryRepository instance
func NewInventoryRepository(db *gorm.DB, logger coreport.Logger) *InventoryRepository {
	return &InventoryRepository{
		db:     db,
		logger: logger,
	}
}

func inventoryKey(userID, itemID uint64) string {
	return fmt.Sprintf("%d-%d", userID, itemID)
}

// GetQuantity returns how many of the item the user holds, 0 when no
// entry exists
func (r *InventoryRepository) GetQuantity(ctx context.Context, userID, itemID uint64) (int64, error) {
	var entryModel model.UserItem
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, errs.NewStoreError("inventory.get", inventoryKey(userID, itemID), result.Error)
	}

	return entryModel.Quantity, nil
}

// Upsert writes the entry, resolving the (user_id, item_id) conflict with
// last-write-wins semantics
func (r *InventoryRepository) Upsert(ctx context.Context, entry *entity.InventoryEntry) error {
	entryModel := model.UserItem{
		UserID:    entry.UserID,
		ItemID:    entry.ItemID,
		Quantity:  entry.Quantity,
		UpdatedAt: entry.UpdatedAt,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "item_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
		}).
		Create(&entryModel).Error
	if err != nil {
		r.logger.Error("Database error writing inventory entry", map[string]any{
			"user_id": entry.UserID,
			"item_id": entry.ItemID,
			"error":   err.Error(),
		})
		return errs.NewStoreError("inventory.upsert", inventoryKey(entry.UserID, entry.ItemID), err)
	}

	return nil
}

// ListByUserID returns all of a user's holdings ordered by item ID
func (r *InventoryRepository) ListByUserID(ctx context.Context, userID uint64) ([]*entity.InventoryEntry, error) {
	var entryModels []model.UserItem
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("item_id").
		Find(&entryModels)
	if result.Error != nil {
		return nil, errs.NewStoreError("inventory.list", inventoryKey(userID, 0), result.Error)
	}

	entries := make([]*entity.InventoryEntry, 0, len(entryModels))
	for _, entryModel := range entryModels {
		entries = append(entries, &entity.InventoryEntry{
			UserID:    entryModel.UserID,
			ItemID:    entryModel.ItemID,
			Quantity:  entryModel.Quantity,
			UpdatedAt: entryModel.UpdatedAt,
		})
	}

	return entries, nil
}
