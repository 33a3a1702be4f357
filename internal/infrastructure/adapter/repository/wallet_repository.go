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

// WalletRepository implements persistence.WalletRepository and
// persistence.WalletAuditRepository using GORM
type WalletRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewWalletRepository creates a new WalletRepository instance
func NewWalletRepository(db *gorm.DB, logger coreport.Logger) *WalletRepository {
	return &WalletRepository{
		db:     db,
		logger: logger,
	}
}

// GetByUserID retrieves the wallet for the given user
func (r *WalletRepository) GetByUserID(ctx context.Context, userID uint64) (*entity.Wallet, error) {
	var walletModel model.Wallet
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&walletModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrWalletNotFound
		}
		r.logger.Error("Database error reading wallet", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, errs.NewStoreError("wallet.get", strconv.FormatUint(userID, 10), result.Error)
	}

	return entity.RestoreWallet(walletModel.UserID, walletModel.Balance, walletModel.UpdatedAt), nil
}

// UpdateBalance writes the wallet's balance and last-updated timestamp
func (r *WalletRepository) UpdateBalance(ctx context.Context, wallet *entity.Wallet) error {
	result := r.db.WithContext(ctx).
		Model(&model.Wallet{}).
		Where("user_id = ?", wallet.UserID).
		Updates(map[string]any{
			"balance":    wallet.Balance(),
			"updated_at": wallet.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Error("Database error writing wallet balance", map[string]any{
			"user_id": wallet.UserID,
			"error":   result.Error.Error(),
		})
		return errs.NewStoreError("wallet.update", strconv.FormatUint(wallet.UserID, 10), result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrWalletNotFound
	}

	return nil
}

// ListUserIDs returns the user IDs of all wallets, for the ledger audit
func (r *WalletRepository) ListUserIDs(ctx context.Context) ([]uint64, error) {
	var userIDs []uint64
	result := r.db.WithContext(ctx).
		Model(&model.Wallet{}).
		Order("user_id").
		Pluck("user_id", &userIDs)
	if result.Error != nil {
		return nil, errs.NewStoreError("wallet.list", "all", result.Error)
	}

	return userIDs, nil
}
