package registry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fbp-works/economy-service/internal/domain/entity"
	errs "github.com/fbp-works/economy-service/internal/domain/error"
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

func TestRegistry_GetOrCreate(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("returns existing user without creating", func(t *testing.T) {
		mockUserRepo := new(persistencemocks.MockUserRepository)
		mockTime := new(coremocks.MockTimeProvider)

		existing := &entity.User{ID: 5, ExternalID: "member-1", CreatedAt: fixedTime}
		mockUserRepo.On("GetByExternalID", ctx, "member-1").Return(existing, nil)

		registry := NewRegistry(mockUserRepo, mockTime, relaxedLogger())

		user, err := registry.GetOrCreate(ctx, "member-1")

		require.NoError(t, err)
		assert.Equal(t, uint64(5), user.ID)
		mockUserRepo.AssertNotCalled(t, "CreateWithWallet")
	})

	t.Run("creates user with wallet on first encounter", func(t *testing.T) {
		mockUserRepo := new(persistencemocks.MockUserRepository)
		mockTime := new(coremocks.MockTimeProvider)
		mockTime.On("Now").Return(fixedTime)

		created := &entity.User{ID: 8, ExternalID: "member-2", CreatedAt: fixedTime}
		mockUserRepo.On("GetByExternalID", ctx, "member-2").Return(nil, errs.ErrUserNotFound).Once()
		mockUserRepo.On("CreateWithWallet", ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.ExternalID == "member-2"
		})).Return(created, nil)

		registry := NewRegistry(mockUserRepo, mockTime, relaxedLogger())

		user, err := registry.GetOrCreate(ctx, "member-2")

		require.NoError(t, err)
		assert.Equal(t, uint64(8), user.ID)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("lost insert race falls back to the winner's row", func(t *testing.T) {
		mockUserRepo := new(persistencemocks.MockUserRepository)
		mockTime := new(coremocks.MockTimeProvider)
		mockTime.On("Now").Return(fixedTime)

		winner := &entity.User{ID: 3, ExternalID: "member-3", CreatedAt: fixedTime}
		mockUserRepo.On("GetByExternalID", ctx, "member-3").Return(nil, errs.ErrUserNotFound).Once()
		mockUserRepo.On("CreateWithWallet", ctx, mock.Anything).Return(nil, errs.ErrDuplicateUser)
		mockUserRepo.On("GetByExternalID", ctx, "member-3").Return(winner, nil).Once()

		registry := NewRegistry(mockUserRepo, mockTime, relaxedLogger())

		user, err := registry.GetOrCreate(ctx, "member-3")

		require.NoError(t, err)
		assert.Equal(t, uint64(3), user.ID)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("rejects blank external identity", func(t *testing.T) {
		mockUserRepo := new(persistencemocks.MockUserRepository)
		mockTime := new(coremocks.MockTimeProvider)

		registry := NewRegistry(mockUserRepo, mockTime, relaxedLogger())

		_, err := registry.GetOrCreate(ctx, "   ")

		assert.ErrorIs(t, err, errs.ErrInvalidExternalID)
		mockUserRepo.AssertNotCalled(t, "GetByExternalID")
	})

	t.Run("store failure on lookup propagates", func(t *testing.T) {
		mockUserRepo := new(persistencemocks.MockUserRepository)
		mockTime := new(coremocks.MockTimeProvider)

		mockUserRepo.On("GetByExternalID", ctx, "member-4").Return(nil, errs.ErrStoreUnavailable)

		registry := NewRegistry(mockUserRepo, mockTime, relaxedLogger())

		_, err := registry.GetOrCreate(ctx, "member-4")

		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
		mockUserRepo.AssertNotCalled(t, "CreateWithWallet")
	})
}
