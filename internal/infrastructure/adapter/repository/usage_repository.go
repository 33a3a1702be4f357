package repository

import (
	"context"
	"fmt"

	"github.com/fbp-works/economy-service/internal/domain/entity"
	errs "github.com/fbp-works/economy-service/internal/domain/error"
	coreport "github.com/fbp-works/economy-service/internal/domain/port/core"
	"github.com/fbp-works/economy-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ItemUsageRepository implements persistence.ItemUsageRepository using
// GORM. The item_usages table is append-only.
type ItemUsageRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewItemUsageRepository creates a new ItemUsageRepository instance
func NewItemUsageRepository(db *gorm.DB, logger coreport.Logger) *ItemUsageRepository {
	return &ItemUsageRepository{
		db:     db,
		logger: logger,
	}
}

// Create appends a usage record
func (r *ItemUsageRepository) Create(ctx context.Context, usage *entity.ItemUsage) error {
	usageModel := model.ItemUsage{
		UserID:    usage.UserID,
		ItemID:    usage.ItemID,
		TargetRef: usage.TargetRef,
		Action:    usage.Action,
		CreatedAt: usage.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&usageModel).Error; err != nil {
		r.logger.Error("Database error appending item usage", map[string]any{
			"user_id":    usage.UserID,
			"item_id":    usage.ItemID,
			"target_ref": usage.TargetRef,
			"error":      err.Error(),
		})
		return errs.NewStoreError("usage.create", fmt.Sprintf("%d-%s", usage.UserID, usage.TargetRef), err)
	}

	usage.ID = usageModel.ID
	return nil
}

// CountByTarget counts usages of the given action against a target
func (r *ItemUsageRepository) CountByTarget(ctx context.Context, targetRef, action string) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ItemUsage{}).
		Where("target_ref = ? AND action = ?", targetRef, action).
		Count(&count)
	if result.Error != nil {
		return 0, errs.NewStoreError("usage.count", targetRef, result.Error)
	}

	return count, nil
}
