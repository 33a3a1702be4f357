package registry

import (
	"context"
	"errors"
	"strings"

	"github.com/fbp-works/economy-service/internal/domain/entity"
	errs "github.com/fbp-works/economy-service/internal/domain/error"
	coreport "github.com/fbp-works/economy-service/internal/domain/port/core"
	"github.com/fbp-works/economy-service/internal/domain/port/persistence"
	"github.com/fbp-works/economy-service/internal/domain/port/usecase"
)

// Registry implements get-or-create semantics for users and their wallets
type Registry struct {
	userRepo     persistence.UserRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewRegistry creates a new user registry
func NewRegistry(
	userRepo persistence.UserRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.RegistryUseCase {
	return &Registry{
		userRepo:     userRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetOrCreate looks a user up by external identity and lazily creates the
// user together with a zero-balance wallet. Insert races on the unique
// identity column resolve to a single winner; the loser re-reads and
// returns the existing row.
func (r *Registry) GetOrCreate(ctx context.Context, externalID string) (*entity.User, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return nil, errs.ErrInvalidExternalID
	}

	user, err := r.userRepo.GetByExternalID(ctx, externalID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, errs.ErrUserNotFound) {
		r.logger.Error("Failed to look up user", map[string]any{
			"external_id": externalID,
			"error":       err.Error(),
		})
		return nil, err
	}

	created, err := entity.NewUser(externalID, r.timeProvider.Now())
	if err != nil {
		return nil, err
	}

	user, err = r.userRepo.CreateWithWallet(ctx, created)
	if err != nil {
		if errors.Is(err, errs.ErrDuplicateUser) {
			// Lost the insert race; the winner's row is authoritative.
			return r.userRepo.GetByExternalID(ctx, externalID)
		}
		r.logger.Error("Failed to create user with wallet", map[string]any{
			"external_id": externalID,
			"error":       err.Error(),
		})
		return nil, err
	}

	r.logger.Info("User created", map[string]any{
		"user_id":     user.ID,
		"external_id": externalID,
	})

	return user, nil
}
