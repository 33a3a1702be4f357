package catalog

import (
	"context"

	"github.com/fbp-works/economy-service/internal/domain/entity"
	coreport "github.com/fbp-works/economy-service/internal/domain/port/core"
	"github.com/fbp-works/economy-service/internal/domain/port/persistence"
	"github.com/fbp-works/economy-service/internal/domain/port/usecase"
)

// Service covers administrative catalog edits and the inventory view
type Service struct {
	itemRepo      persistence.ItemRepository
	questRepo     persistence.QuestRepository
	inventoryRepo persistence.InventoryRepository
	walletRepo    persistence.WalletRepository
	timeProvider  coreport.TimeProvider
	logger        coreport.Logger
}

// NewService creates a catalog service
func NewService(
	itemRepo persistence.ItemRepository,
	questRepo persistence.QuestRepository,
	inventoryRepo persistence.InventoryRepository,
	walletRepo persistence.WalletRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.CatalogUseCase {
	return &Service{
		itemRepo:      itemRepo,
		questRepo:     questRepo,
		inventoryRepo: inventoryRepo,
		walletRepo:    walletRepo,
		timeProvider:  timeProvider,
		logger:        logger,
	}
}

// ListItems returns the full shop catalog
func (s *Service) ListItems(ctx context.Context) ([]*entity.Item, error) {
	return s.itemRepo.List(ctx)
}

// AddItem inserts a new shop item
func (s *Service) AddItem(ctx context.Context, name string, price int64) (*entity.Item, error) {
	item, err := entity.NewItem(name, price, s.timeProvider.Now())
	if err != nil {
		return nil, err
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("Item added", map[string]any{
		"item_id": item.ID,
		"name":    item.Name,
		"price":   item.Price,
	})
	return item, nil
}

// EditItem updates an item's name and price
func (s *Service) EditItem(ctx context.Context, id uint64, name string, price int64) (*entity.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := item.Rename(name, price, s.timeProvider.Now()); err != nil {
		return nil, err
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("Item updated", map[string]any{
		"item_id": item.ID,
		"name":    item.Name,
		"price":   item.Price,
	})
	return item, nil
}

// RemoveItem deletes an item from the catalog
func (s *Service) RemoveItem(ctx context.Context, id uint64) error {
	if err := s.itemRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Item removed", map[string]any{"item_id": id})
	return nil
}

// ListQuests returns all reward definitions ordered by quest number
func (s *Service) ListQuests(ctx context.Context) ([]*entity.Quest, error) {
	return s.questRepo.List(ctx)
}

// AddQuest inserts a new reward definition
func (s *Service) AddQuest(ctx context.Context, number string, reward int64, title string) (*entity.Quest, error) {
	quest, err := entity.NewQuest(number, reward, title, s.timeProvider.Now())
	if err != nil {
		return nil, err
	}

	if err := s.questRepo.Create(ctx, quest); err != nil {
		return nil, err
	}

	s.logger.Info("Quest added", map[string]any{
		"quest_id": quest.ID,
		"number":   quest.Number,
		"reward":   quest.Reward,
	})
	return quest, nil
}

// EditQuest updates a quest's number, reward and title
func (s *Service) EditQuest(ctx context.Context, id uint64, number string, reward int64, title string) (*entity.Quest, error) {
	quest, err := s.questRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := entity.NewQuest(number, reward, title, s.timeProvider.Now())
	if err != nil {
		return nil, err
	}
	updated.ID = quest.ID

	if err := s.questRepo.Update(ctx, updated); err != nil {
		return nil, err
	}

	s.logger.Info("Quest updated", map[string]any{
		"quest_id": updated.ID,
		"number":   updated.Number,
		"reward":   updated.Reward,
	})
	return updated, nil
}

// RemoveQuest deletes a reward definition
func (s *Service) RemoveQuest(ctx context.Context, id uint64) error {
	if err := s.questRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Quest removed", map[string]any{"quest_id": id})
	return nil
}

// GetInventory returns a user's balance together with their item holdings
func (s *Service) GetInventory(ctx context.Context, userID uint64) (*usecase.InventoryView, error) {
	w, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.inventoryRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := &usecase.InventoryView{
		Balance: w.Balance(),
		Items:   make([]usecase.InventoryLine, 0, len(entries)),
	}

	for _, entry := range entries {
		item, err := s.itemRepo.GetByID(ctx, entry.ItemID)
		if err != nil {
			return nil, err
		}
		view.Items = append(view.Items, usecase.InventoryLine{
			ItemName: item.Name,
			Price:    item.Price,
			Quantity: entry.Quantity,
		})
	}

	return view, nil
}
