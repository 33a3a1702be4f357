package repository

import (
	"context"
	"errors"

	"github.com/fbp-works/economy-service/internal/domain/entity"
	errs "github.com/fbp-works/economy-service/internal/domain/error"
	coreport "github.com/fbp-works/economy-service/internal/domain/port/core"
	"github.com/fbp-works/economy-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository implements persistence.UserRepository using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(userModel *model.User) *entity.User {
	return &entity.User{
		ID:         userModel.ID,
		ExternalID: userModel.ExternalID,
		CreatedAt:  userModel.CreatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, externalID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrUserNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		r.logger.Warn("Duplicate user insert lost the race", map[string]any{
			"external_id": externalID,
		})
		return errs.ErrDuplicateUser
	}

	r.logger.Error("Database error on user operation", map[string]any{
		"operation":   operation,
		"external_id": externalID,
		"error":       err.Error(),
	})
	return errs.NewStoreError(operation, externalID, err)
}

// GetByExternalID retrieves a user by their external identity string
func (r *UserRepository) GetByExternalID(ctx context.Context, externalID string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("external_id = ?", externalID).First(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("user.get", result.Error, externalID)
	}

	return r.modelToEntity(&userModel), nil
}

// CreateWithWallet inserts the user row and its zero-balance wallet inside
// one transaction. A unique index on external_id decides insert races.
func (r *UserRepository) CreateWithWallet(ctx context.Context, user *entity.User) (*entity.User, error) {
	now := r.timeProvider.Now()
	userModel := model.User{
		ExternalID: user.ExternalID,
		CreatedAt:  user.CreatedAt,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&userModel).Error; err != nil {
			return err
		}

		walletModel := model.Wallet{
			UserID:    userModel.ID,
			Balance:   0,
			UpdatedAt: now,
		}
		return tx.Create(&walletModel).Error
	})
	if err != nil {
		return nil, r.handleDatabaseError("user.create", err, user.ExternalID)
	}

	r.logger.Info("User created with empty wallet", map[string]any{
		"user_id":     userModel.ID,
		"external_id": userModel.ExternalID,
	})

	return r.modelToEntity(&userModel), nil
}
