package reward

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

func relaxedLogger() *coremocks.MockLogger {
	l := new(coremocks.MockLogger)
	l.On("Debug", mock.Anything, mock.Anything).Maybe()
	l.On("Info", mock.Anything, mock.Anything).Maybe()
	l.On("Warn", mock.Anything, mock.Anything).Maybe()
	l.On("Error", mock.Anything, mock.Anything).Maybe()
	return l
}

func TestResolver_Resolve(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("existing definition is returned as found", func(t *testing.T) {
		mockQuestRepo := new(persistencemocks.MockQuestRepository)
		mockTime := new(coremocks.MockTimeProvider)

		quest := &entity.Quest{ID: 1, Number: "007", Reward: 250, Title: "Final Report"}
		mockQuestRepo.On("GetByNumber", ctx, "007").Return(quest, nil)

		resolver := NewResolver(mockQuestRepo, mockTime, relaxedLogger(), 100)

		reward, err := resolver.Resolve(ctx, "7")

		require.NoError(t, err)
		assert.Equal(t, int64(250), reward.Amount)
		assert.Equal(t, "Final Report", reward.Title)
		assert.Equal(t, usecase.RewardFound, reward.Outcome)
		mockQuestRepo.AssertNotCalled(t, "Create")
	})

	t.Run("missing definition is auto-created with the default", func(t *testing.T) {
		mockQuestRepo := new(persistencemocks.MockQuestRepository)
		mockTime := new(coremocks.MockTimeProvider)
		mockTime.On("Now").Return(fixedTime)

		mockQuestRepo.On("GetByNumber", ctx, "042").Return(nil, errs.ErrQuestNotFound)
		mockQuestRepo.On("Create", ctx, mock.MatchedBy(func(q *entity.Quest) bool {
			return q.Number == "042" && q.Reward == 100
		})).Return(nil)

		resolver := NewResolver(mockQuestRepo, mockTime, relaxedLogger(), 100)

		reward, err := resolver.Resolve(ctx, "42")

		require.NoError(t, err)
		assert.Equal(t, int64(100), reward.Amount)
		assert.Equal(t, usecase.RewardAutoCreated, reward.Outcome)
		mockQuestRepo.AssertExpectations(t)
	})

	t.Run("store failure falls back to the default without persisting", func(t *testing.T) {
		mockQuestRepo := new(persistencemocks.MockQuestRepository)
		mockTime := new(coremocks.MockTimeProvider)

		mockQuestRepo.On("GetByNumber", ctx, "042").Return(nil, errs.ErrStoreUnavailable)

		resolver := NewResolver(mockQuestRepo, mockTime, relaxedLogger(), 100)

		reward, err := resolver.Resolve(ctx, "42")

		require.NoError(t, err)
		assert.Equal(t, int64(100), reward.Amount)
		assert.Equal(t, usecase.RewardFallback, reward.Outcome)
		mockQuestRepo.AssertNotCalled(t, "Create")
	})

	t.Run("failed auto-create persist downgrades to fallback", func(t *testing.T) {
		mockQuestRepo := new(persistencemocks.MockQuestRepository)
		mockTime := new(coremocks.MockTimeProvider)
		mockTime.On("Now").Return(fixedTime)

		mockQuestRepo.On("GetByNumber", ctx, "042").Return(nil, errs.ErrQuestNotFound)
		mockQuestRepo.On("Create", ctx, mock.Anything).Return(errs.ErrStoreUnavailable)

		resolver := NewResolver(mockQuestRepo, mockTime, relaxedLogger(), 100)

		reward, err := resolver.Resolve(ctx, "42")

		require.NoError(t, err)
		assert.Equal(t, int64(100), reward.Amount)
		assert.Equal(t, usecase.RewardFallback, reward.Outcome)
	})

	t.Run("repeated resolution is stable", func(t *testing.T) {
		mockQuestRepo := new(persistencemocks.MockQuestRepository)
		mockTime := new(coremocks.MockTimeProvider)
		mockTime.On("Now").Return(fixedTime)

		// First encounter provisions the definition; afterwards it is found.
		mockQuestRepo.On("GetByNumber", ctx, "042").Return(nil, errs.ErrQuestNotFound).Once()
		mockQuestRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
		created := &entity.Quest{ID: 2, Number: "042", Reward: 100, Title: "Quest 042"}
		mockQuestRepo.On("GetByNumber", ctx, "042").Return(created, nil)

		resolver := NewResolver(mockQuestRepo, mockTime, relaxedLogger(), 100)

		first, err := resolver.Resolve(ctx, "42")
		require.NoError(t, err)
		second, err := resolver.Resolve(ctx, "042")
		require.NoError(t, err)

		assert.Equal(t, usecase.RewardAutoCreated, first.Outcome)
		assert.Equal(t, usecase.RewardFound, second.Outcome)
		assert.Equal(t, first.Amount, second.Amount)
		mockQuestRepo.AssertNumberOfCalls(t, "Create", 1)
	})
}
