package repository

import (
	"context"
	"strconv"

	"github.com/fbp-works/economy-service/internal/domain/entity"
	errs "github.com/fbp-works/economy-service/internal/domain/error"
	coreport "github.com/fbp-works/economy-service/internal/domain/port/core"
	"github.com/fbp-works/economy-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionRepository implements persistence.TransactionRepository using
// GORM. The transactions table is append-only.
type TransactionRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

// Create appends a new transaction record
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	txModel := model.Transaction{
		TransactionID: transaction.TransactionID,
		UserID:        transaction.UserID,
		Amount:        transaction.Amount,
		Actor:         transaction.Actor,
		CreatedAt:     transaction.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&txModel).Error; err != nil {
		r.logger.Error("Database error appending transaction", map[string]any{
			"transaction_id": transaction.TransactionID,
			"user_id":        transaction.UserID,
			"error":          err.Error(),
		})
		return errs.NewStoreError("transaction.create", transaction.TransactionID, err)
	}

	transaction.ID = txModel.ID
	return nil
}

// ListByUserID returns a user's transactions in append order
func (r *TransactionRepository) ListByUserID(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	var txModels []model.Transaction
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&txModels)
	if result.Error != nil {
		return nil, errs.NewStoreError("transaction.list", strconv.FormatUint(userID, 10), result.Error)
	}

	transactions := make([]*entity.Transaction, 0, len(txModels))
	for _, txModel := range txModels {
		transactions = append(transactions, &entity.Transaction{
			ID:            txModel.ID,
			TransactionID: txModel.TransactionID,
			UserID:        txModel.UserID,
			Amount:        txModel.Amount,
			Actor:         txModel.Actor,
			CreatedAt:     txModel.CreatedAt,
		})
	}

	return transactions, nil
}

// SumByUserID returns the sum of a user's transaction amounts
func (r *TransactionRepository) SumByUserID(ctx context.Context, userID uint64) (int64, error) {
	var sum int64
	result := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum)
	if result.Error != nil {
		return 0, errs.NewStoreError("transaction.sum", strconv.FormatUint(userID, 10), result.Error)
	}

	return sum, nil
}
