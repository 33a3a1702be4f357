package entity

import (
	"testing"
	"time"

	errs "github.com/fbp-works/economy-service/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWallet(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	w := NewWallet(7, fixedTime)

	assert.Equal(t, uint64(7), w.UserID)
	assert.Equal(t, int64(0), w.Balance())
	assert.Equal(t, fixedTime, w.UpdatedAt)
}

func TestWallet_Apply(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("credits and debits accumulate", func(t *testing.T) {
		w := NewWallet(1, fixedTime)

		require.NoError(t, w.Apply(100, fixedTime))
		require.NoError(t, w.Apply(50, fixedTime))
		require.NoError(t, w.Apply(-30, fixedTime))

		assert.Equal(t, int64(120), w.Balance())
	})

	t.Run("overdraft is rejected and balance unchanged", func(t *testing.T) {
		w := NewWallet(1, fixedTime)
		require.NoError(t, w.Apply(40, fixedTime))

		err := w.Apply(-41, fixedTime)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
		assert.Equal(t, int64(40), w.Balance())
	})

	t.Run("debit to exactly zero is allowed", func(t *testing.T) {
		w := NewWallet(1, fixedTime)
		require.NoError(t, w.Apply(40, fixedTime))

		require.NoError(t, w.Apply(-40, fixedTime))

		assert.Equal(t, int64(0), w.Balance())
	})

	t.Run("updates the timestamp on success only", func(t *testing.T) {
		later := fixedTime.Add(time.Hour)
		w := NewWallet(1, fixedTime)

		require.NoError(t, w.Apply(10, later))
		assert.Equal(t, later, w.UpdatedAt)

		evenLater := later.Add(time.Hour)
		require.Error(t, w.Apply(-11, evenLater))
		assert.Equal(t, later, w.UpdatedAt)
	})
}

func TestWallet_CanAfford(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	w := RestoreWallet(1, 50, fixedTime)

	assert.True(t, w.CanAfford(50))
	assert.True(t, w.CanAfford(0))
	assert.False(t, w.CanAfford(51))
}

func TestRestoreWallet(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	w := RestoreWallet(3, 250, fixedTime)

	assert.Equal(t, uint64(3), w.UserID)
	assert.Equal(t, int64(250), w.Balance())
}
