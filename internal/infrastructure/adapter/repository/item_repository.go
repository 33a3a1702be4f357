package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/fbp-works/economy-service/internal/domain/entity"
	errs "github.com/fbp-works/economy-service/internal/domain/error"
	coreport "github.com/fbp-works/economy-service/internal/domain/port/core"
	"github.com/fbp-works/economy-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ItemRepository implements persistence.ItemRepository using GORM
type ItemRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewItemRepository creates a new ItemRepository instance
func NewItemRepository(db *gorm.DB, logger coreport.Logger) *ItemRepository {
	return &ItemRepository{
		db:     db,
		logger: logger,
	}
}

func itemModelToEntity(itemModel *model.Item) *entity.Item {
	return &entity.Item{
		ID:        itemModel.ID,
		Name:      itemModel.Name,
		Price:     itemModel.Price,
		UpdatedAt: itemModel.UpdatedAt,
	}
}

func (r *ItemRepository) handleDatabaseError(operation, key string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrItemNotFound
	}

	r.logger.Error("Database error on item operation", map[string]any{
		"operation": operation,
		"key":       key,
		"error":     err.Error(),
	})
	return errs.NewStoreError(operation, key, err)
}

// GetByID retrieves an item by ID
func (r *ItemRepository) GetByID(ctx context.Context, id uint64) (*entity.Item, error) {
	var itemModel model.Item
	result := r.db.WithContext(ctx).First(&itemModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("item.get", strconv.FormatUint(id, 10), result.Error)
	}

	return itemModelToEntity(&itemModel), nil
}

// GetByName retrieves an item by exact name
func (r *ItemRepository) GetByName(ctx context.Context, name string) (*entity.Item, error) {
	var itemModel model.Item
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&itemModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("item.get_by_name", name, result.Error)
	}

	return itemModelToEntity(&itemModel), nil
}

// List returns all items ordered by ID
func (r *ItemRepository) List(ctx context.Context) ([]*entity.Item, error) {
	var itemModels []model.Item
	result := r.db.WithContext(ctx).Order("id").Find(&itemModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("item.list", "all", result.Error)
	}

	items := make([]*entity.Item, 0, len(itemModels))
	for i := range itemModels {
		items = append(items, itemModelToEntity(&itemModels[i]))
	}

	return items, nil
}

// Create inserts a new item
func (r *ItemRepository) Create(ctx context.Context, item *entity.Item) error {
	itemModel := model.Item{
		Name:      item.Name,
		Price:     item.Price,
		UpdatedAt: item.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&itemModel).Error; err != nil {
		return r.handleDatabaseError("item.create", item.Name, err)
	}

	item.ID = itemModel.ID
	return nil
}

// Update writes an item's name and price
func (r *ItemRepository) Update(ctx context.Context, item *entity.Item) error {
	result := r.db.WithContext(ctx).
		Model(&model.Item{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"name":       item.Name,
			"price":      item.Price,
			"updated_at": item.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("item.update", strconv.FormatUint(item.ID, 10), result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrItemNotFound
	}

	return nil
}

// Delete removes an item from the catalog
func (r *ItemRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Item{}, id)
	if result.Error != nil {
		return r.handleDatabaseError("item.delete", strconv.FormatUint(id, 10), result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrItemNotFound
	}

	return nil
}
