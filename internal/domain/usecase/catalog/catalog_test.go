package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fbp-works/economy-service/internal/domain/entity"
	errs "github.com/fbp-works/economy-service/internal/domain/error"
	"github.com/fbp-works/economy-service/internal/domain/port/usecase"
	coremocks "github.com/fbp-works/economy-service/mocks/port/core"
	persistencemocks "github.com/fbp-works/economy-service/mocks/port/persistence"
)

var fixedTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type catalogFixture struct {
	items     *persistencemocks.MockItemRepository
	quests    *persistencemocks.MockQuestRepository
	inventory *persistencemocks.MockInventoryRepository
	wallets   *persistencemocks.MockWalletRepository
	svc       usecase.CatalogUseCase
}

func newCatalogFixture() *catalogFixture {
	f := &catalogFixture{
		items:     new(persistencemocks.MockItemRepository),
		quests:    new(persistencemocks.MockQuestRepository),
		inventory: new(persistencemocks.MockInventoryRepository),
		wallets:   new(persistencemocks.MockWalletRepository),
	}

	logger := new(coremocks.MockLogger)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()

	tp := new(coremocks.MockTimeProvider)
	tp.On("Now").Return(fixedTime).Maybe()

	f.svc = NewService(f.items, f.quests, f.inventory, f.wallets, tp, logger)
	return f
}

func TestServiceAddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a trimmed item", func(t *testing.T) {
		f := newCatalogFixture()
		f.items.On("Create", ctx, mock.MatchedBy(func(item *entity.Item) bool {
			return item.Name == "Sword" && item.Price == 50 && item.UpdatedAt.Equal(fixedTime)
		})).Return(nil)

		item, err := f.svc.AddItem(ctx, "  Sword  ", 50)

		require.NoError(t, err)
		assert.Equal(t, "Sword", item.Name)
		f.items.AssertExpectations(t)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		f := newCatalogFixture()

		item, err := f.svc.AddItem(ctx, "   ", 50)

		assert.ErrorIs(t, err, errs.ErrInvalidName)
		assert.Nil(t, item)
		f.items.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		f := newCatalogFixture()

		item, err := f.svc.AddItem(ctx, "Sword", -1)

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		assert.Nil(t, item)
		f.items.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestServiceEditItem(t *testing.T) {
	ctx := context.Background()

	t.Run("updates name and price", func(t *testing.T) {
		f := newCatalogFixture()
		f.items.On("GetByID", ctx, uint64(5)).
			Return(&entity.Item{ID: 5, Name: "Sword", Price: 50}, nil)
		f.items.On("Update", ctx, mock.MatchedBy(func(item *entity.Item) bool {
			return item.ID == 5 && item.Name == "Longsword" && item.Price == 80
		})).Return(nil)

		item, err := f.svc.EditItem(ctx, 5, "Longsword", 80)

		require.NoError(t, err)
		assert.Equal(t, "Longsword", item.Name)
		assert.Equal(t, int64(80), item.Price)
	})

	t.Run("missing item surfaces not found", func(t *testing.T) {
		f := newCatalogFixture()
		f.items.On("GetByID", ctx, uint64(99)).Return(nil, errs.ErrItemNotFound)

		item, err := f.svc.EditItem(ctx, 99, "Longsword", 80)

		assert.ErrorIs(t, err, errs.ErrItemNotFound)
		assert.Nil(t, item)
		f.items.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestServiceRemoveItem(t *testing.T) {
	ctx := context.Background()
	f := newCatalogFixture()
	f.items.On("Delete", ctx, uint64(5)).Return(nil)

	require.NoError(t, f.svc.RemoveItem(ctx, 5))
	f.items.AssertExpectations(t)
}

func TestServiceAddQuest(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes the number before persisting", func(t *testing.T) {
		f := newCatalogFixture()
		f.quests.On("Create", ctx, mock.MatchedBy(func(quest *entity.Quest) bool {
			return quest.Number == "007" && quest.Reward == 250 && quest.Title == "Final Report"
		})).Return(nil)

		quest, err := f.svc.AddQuest(ctx, "7", 250, "Final Report")

		require.NoError(t, err)
		assert.Equal(t, "007", quest.Number)
		f.quests.AssertExpectations(t)
	})

	t.Run("rejects blank number", func(t *testing.T) {
		f := newCatalogFixture()

		quest, err := f.svc.AddQuest(ctx, "  ", 250, "Final Report")

		assert.ErrorIs(t, err, errs.ErrInvalidName)
		assert.Nil(t, quest)
		f.quests.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestServiceEditQuest(t *testing.T) {
	ctx := context.Background()

	f := newCatalogFixture()
	f.quests.On("GetByID", ctx, uint64(3)).
		Return(&entity.Quest{ID: 3, Number: "007", Reward: 100}, nil)
	f.quests.On("Update", ctx, mock.MatchedBy(func(quest *entity.Quest) bool {
		return quest.ID == 3 && quest.Number == "042" && quest.Reward == 300
	})).Return(nil)

	quest, err := f.svc.EditQuest(ctx, 3, "42", 300, "Revised")

	require.NoError(t, err)
	assert.Equal(t, uint64(3), quest.ID)
	assert.Equal(t, "042", quest.Number)
}

func TestServiceGetInventory(t *testing.T) {
	ctx := context.Background()

	t.Run("joins holdings with catalog data", func(t *testing.T) {
		f := newCatalogFixture()
		f.wallets.On("GetByUserID", ctx, uint64(7)).
			Return(entity.RestoreWallet(7, 320, fixedTime), nil)
		f.inventory.On("ListByUserID", ctx, uint64(7)).Return([]*entity.InventoryEntry{
			{UserID: 7, ItemID: 5, Quantity: 2},
			{UserID: 7, ItemID: 9, Quantity: 1},
		}, nil)
		f.items.On("GetByID", ctx, uint64(5)).
			Return(&entity.Item{ID: 5, Name: "Sword", Price: 50}, nil)
		f.items.On("GetByID", ctx, uint64(9)).
			Return(&entity.Item{ID: 9, Name: "Vote Ticket", Price: 30}, nil)

		view, err := f.svc.GetInventory(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, int64(320), view.Balance)
		require.Len(t, view.Items, 2)
		assert.Equal(t, usecase.InventoryLine{ItemName: "Sword", Price: 50, Quantity: 2}, view.Items[0])
		assert.Equal(t, usecase.InventoryLine{ItemName: "Vote Ticket", Price: 30, Quantity: 1}, view.Items[1])
	})

	t.Run("empty holdings still report the balance", func(t *testing.T) {
		f := newCatalogFixture()
		f.wallets.On("GetByUserID", ctx, uint64(7)).
			Return(entity.RestoreWallet(7, 0, fixedTime), nil)
		f.inventory.On("ListByUserID", ctx, uint64(7)).Return([]*entity.InventoryEntry{}, nil)

		view, err := f.svc.GetInventory(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, int64(0), view.Balance)
		assert.Empty(t, view.Items)
	})

	t.Run("missing wallet surfaces not found", func(t *testing.T) {
		f := newCatalogFixture()
		f.wallets.On("GetByUserID", ctx, uint64(7)).Return(nil, errs.ErrWalletNotFound)

		view, err := f.svc.GetInventory(ctx, 7)

		assert.ErrorIs(t, err, errs.ErrWalletNotFound)
		assert.Nil(t, view)
	})
}
