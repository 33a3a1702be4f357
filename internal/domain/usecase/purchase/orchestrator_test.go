package purchase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fbp-works/economy-service/internal/domain/entity"
	errs "github.com/fbp-works/economy-service/internal/domain/error"
	coremocks "github.com/fbp-works/economy-service/mocks/port/core"
	persistencemocks "github.com/fbp-works/economy-service/mocks/port/persistence"
	usecasemocks "github.com/fbp-works/economy-service/mocks/port/usecase"
)

func relaxedLogger() *coremocks.MockLogger {
	l := new(coremocks.MockLogger)
	l.On("Debug", mock.Anything, mock.Anything).Maybe()
	l.On("Info", mock.Anything, mock.Anything).Maybe()
	l.On("Warn", mock.Anything, mock.Anything).Maybe()
	l.On("Error", mock.Anything, mock.Anything).Maybe()
	return l
}

func fixedTimeProvider(at time.Time) *coremocks.MockTimeProvider {
	tp := new(coremocks.MockTimeProvider)
	tp.On("Now").Return(at).Maybe()
	return tp
}

func TestOrchestrator_Purchase(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()
	sword := &entity.Item{ID: 5, Name: "Sword", Price: 50}

	t.Run("successful purchase deducts and credits inventory", func(t *testing.T) {
		mockItemRepo := new(persistencemocks.MockItemRepository)
		mockInventoryRepo := new(persistencemocks.MockInventoryRepository)
		mockWallets := new(usecasemocks.MockWalletUseCase)

		mockItemRepo.On("GetByID", ctx, uint64(5)).Return(sword, nil)
		mockWallets.On("GetBalance", ctx, uint64(1)).Return(int64(100), nil)
		mockInventoryRepo.On("GetQuantity", ctx, uint64(1), uint64(5)).Return(int64(0), nil)
		mockWallets.On("ApplyDelta", ctx, uint64(1), int64(-50), "PURCHASE:5").Return(int64(50), nil)
		mockInventoryRepo.On("Upsert", ctx, mock.MatchedBy(func(e *entity.InventoryEntry) bool {
			return e.UserID == 1 && e.ItemID == 5 && e.Quantity == 1
		})).Return(nil)

		o := NewOrchestrator(mockItemRepo, mockInventoryRepo, mockWallets, NewKeyedLock(), fixedTimeProvider(fixedTime), relaxedLogger())

		result, err := o.Purchase(ctx, 1, 5)

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, int64(50), result.NewBalance)
		assert.Contains(t, result.Message, "Sword")
		mockWallets.AssertExpectations(t)
		mockInventoryRepo.AssertExpectations(t)
	})

	t.Run("repeat purchase increments the quantity", func(t *testing.T) {
		mockItemRepo := new(persistencemocks.MockItemRepository)
		mockInventoryRepo := new(persistencemocks.MockInventoryRepository)
		mockWallets := new(usecasemocks.MockWalletUseCase)

		mockItemRepo.On("GetByID", ctx, uint64(5)).Return(sword, nil)
		mockWallets.On("GetBalance", ctx, uint64(1)).Return(int64(50), nil)
		mockInventoryRepo.On("GetQuantity", ctx, uint64(1), uint64(5)).Return(int64(1), nil)
		mockWallets.On("ApplyDelta", ctx, uint64(1), int64(-50), "PURCHASE:5").Return(int64(0), nil)
		mockInventoryRepo.On("Upsert", ctx, mock.MatchedBy(func(e *entity.InventoryEntry) bool {
			return e.Quantity == 2
		})).Return(nil)

		o := NewOrchestrator(mockItemRepo, mockInventoryRepo, mockWallets, NewKeyedLock(), fixedTimeProvider(fixedTime), relaxedLogger())

		result, err := o.Purchase(ctx, 1, 5)

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, int64(0), result.NewBalance)
	})

	t.Run("insufficient funds rejects without side effects", func(t *testing.T) {
		mockItemRepo := new(persistencemocks.MockItemRepository)
		mockInventoryRepo := new(persistencemocks.MockInventoryRepository)
		mockWallets := new(usecasemocks.MockWalletUseCase)

		mockItemRepo.On("GetByID", ctx, uint64(5)).Return(sword, nil)
		mockWallets.On("GetBalance", ctx, uint64(1)).Return(int64(49), nil)

		o := NewOrchestrator(mockItemRepo, mockInventoryRepo, mockWallets, NewKeyedLock(), fixedTimeProvider(fixedTime), relaxedLogger())

		result, err := o.Purchase(ctx, 1, 5)

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, int64(49), result.NewBalance)
		mockWallets.AssertNotCalled(t, "ApplyDelta")
		mockInventoryRepo.AssertNotCalled(t, "Upsert")
	})

	t.Run("unknown item propagates not found", func(t *testing.T) {
		mockItemRepo := new(persistencemocks.MockItemRepository)
		mockInventoryRepo := new(persistencemocks.MockInventoryRepository)
		mockWallets := new(usecasemocks.MockWalletUseCase)

		mockItemRepo.On("GetByID", ctx, uint64(9)).Return(nil, errs.ErrItemNotFound)

		o := NewOrchestrator(mockItemRepo, mockInventoryRepo, mockWallets, NewKeyedLock(), fixedTimeProvider(fixedTime), relaxedLogger())

		_, err := o.Purchase(ctx, 1, 9)

		assert.ErrorIs(t, err, errs.ErrItemNotFound)
	})

	t.Run("busy key is rejected immediately", func(t *testing.T) {
		mockItemRepo := new(persistencemocks.MockItemRepository)
		mockInventoryRepo := new(persistencemocks.MockInventoryRepository)
		mockWallets := new(usecasemocks.MockWalletUseCase)

		locks := NewKeyedLock()
		require.True(t, locks.TryAcquire(1, 5))

		o := NewOrchestrator(mockItemRepo, mockInventoryRepo, mockWallets, locks, fixedTimeProvider(fixedTime), relaxedLogger())

		result, err := o.Purchase(ctx, 1, 5)

		require.NoError(t, err)
		assert.False(t, result.Success)
		mockItemRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("concurrent purchases of the same key settle one at most", func(t *testing.T) {
		mockItemRepo := new(persistencemocks.MockItemRepository)
		mockInventoryRepo := new(persistencemocks.MockInventoryRepository)
		mockWallets := new(usecasemocks.MockWalletUseCase)

		// Hold each winner inside the critical section long enough for the
		// rivals to hit the busy key.
		gate := make(chan struct{})
		mockItemRepo.On("GetByID", ctx, uint64(5)).Run(func(args mock.Arguments) {
			<-gate
		}).Return(sword, nil)
		mockWallets.On("GetBalance", ctx, uint64(1)).Return(int64(100), nil)
		mockInventoryRepo.On("GetQuantity", ctx, uint64(1), uint64(5)).Return(int64(0), nil)
		mockWallets.On("ApplyDelta", ctx, uint64(1), int64(-50), "PURCHASE:5").Return(int64(50), nil)
		mockInventoryRepo.On("Upsert", ctx, mock.Anything).Return(nil)

		o := NewOrchestrator(mockItemRepo, mockInventoryRepo, mockWallets, NewKeyedLock(), fixedTimeProvider(fixedTime), relaxedLogger())

		const rivals = 8
		results := make(chan bool, rivals)
		var wg sync.WaitGroup
		for i := 0; i < rivals; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				result, err := o.Purchase(ctx, 1, 5)
				require.NoError(t, err)
				results <- result.Success
			}()
		}

		// The lock holder is parked on the gate, so every purchase that
		// returns before the gate opens must be a busy rejection.
		successes := 0
		for i := 0; i < rivals-1; i++ {
			if <-results {
				successes++
			}
		}
		assert.Equal(t, 0, successes)

		close(gate)
		wg.Wait()
		assert.True(t, <-results)
		mockWallets.AssertNumberOfCalls(t, "ApplyDelta", 1)
	})

	t.Run("inventory credit failure surfaces the error", func(t *testing.T) {
		mockItemRepo := new(persistencemocks.MockItemRepository)
		mockInventoryRepo := new(persistencemocks.MockInventoryRepository)
		mockWallets := new(usecasemocks.MockWalletUseCase)

		mockItemRepo.On("GetByID", ctx, uint64(5)).Return(sword, nil)
		mockWallets.On("GetBalance", ctx, uint64(1)).Return(int64(100), nil)
		mockInventoryRepo.On("GetQuantity", ctx, uint64(1), uint64(5)).Return(int64(0), nil)
		mockWallets.On("ApplyDelta", ctx, uint64(1), int64(-50), "PURCHASE:5").Return(int64(50), nil)
		mockInventoryRepo.On("Upsert", ctx, mock.Anything).Return(errs.ErrStoreUnavailable)

		o := NewOrchestrator(mockItemRepo, mockInventoryRepo, mockWallets, NewKeyedLock(), fixedTimeProvider(fixedTime), relaxedLogger())

		_, err := o.Purchase(ctx, 1, 5)

		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
	})

	t.Run("lock is released after completion", func(t *testing.T) {
		mockItemRepo := new(persistencemocks.MockItemRepository)
		mockInventoryRepo := new(persistencemocks.MockInventoryRepository)
		mockWallets := new(usecasemocks.MockWalletUseCase)

		mockItemRepo.On("GetByID", ctx, uint64(5)).Return(nil, errs.ErrItemNotFound)

		locks := NewKeyedLock()
		o := NewOrchestrator(mockItemRepo, mockInventoryRepo, mockWallets, locks, fixedTimeProvider(fixedTime), relaxedLogger())

		_, err := o.Purchase(ctx, 1, 5)
		require.Error(t, err)

		assert.Equal(t, 0, locks.InFlight())
	})
}
