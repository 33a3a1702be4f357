package wallet

import (
	"context"

	"github.com/google/uuid"

	"github.com/fbp-works/economy-service/internal/domain/entity"
	errs "github.com/fbp-works/economy-service/internal/domain/error"
	coreport "github.com/fbp-works/economy-service/internal/domain/port/core"
	"github.com/fbp-works/economy-service/internal/domain/port/persistence"
	"github.com/fbp-works/economy-service/internal/domain/port/usecase"
)

// Service reads balances and applies signed deltas. The read-compute-write
// sequence is not serialized here; the purchase orchestrator owns
// serialization for purchases and the dedup window bounds reward grants.
type Service struct {
	walletRepo      persistence.WalletRepository
	transactionRepo persistence.TransactionRepository
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
}

// NewService creates a new wallet service
func NewService(
	walletRepo persistence.WalletRepository,
	transactionRepo persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.WalletUseCase {
	return &Service{
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// GetBalance returns the user's current balance
func (s *Service) GetBalance(ctx context.Context, userID uint64) (int64, error) {
	w, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return w.Balance(), nil
}

// ApplyDelta applies a signed amount to the wallet and appends a
// transaction row attributing the change to the actor. Returns the new
// balance. A negative result is rejected with ErrInsufficientFunds and
// leaves the balance unchanged.
func (s *Service) ApplyDelta(ctx context.Context, userID uint64, amount int64, actor string) (int64, error) {
	// A zero delta would only add noise to the transaction log.
	if amount == 0 {
		return 0, errs.ErrInvalidAmount
	}

	w, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load wallet", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return 0, err
	}

	now := s.timeProvider.Now()
	if err := w.Apply(amount, now); err != nil {
		// Expected, user-facing condition; not logged as an error.
		return 0, err
	}

	if err := s.walletRepo.UpdateBalance(ctx, w); err != nil {
		s.logger.Error("Failed to write wallet balance", map[string]any{
			"user_id": userID,
			"amount":  amount,
			"actor":   actor,
			"error":   err.Error(),
		})
		return 0, err
	}

	txn := entity.NewTransaction(uuid.New().String(), userID, amount, actor, now)
	if err := s.transactionRepo.Create(ctx, txn); err != nil {
		// The balance write already succeeded, so the ledger no longer sums
		// to the wallet balance. Surface loudly; never swallow.
		s.logger.Error("Transaction append failed after balance write", map[string]any{
			"error_type":     "data_integrity",
			"user_id":        userID,
			"transaction_id": txn.TransactionID,
			"amount":         amount,
			"actor":          actor,
			"new_balance":    w.Balance(),
			"error":          err.Error(),
		})
		return 0, errs.NewStoreError("transaction.create", txn.TransactionID, err)
	}

	s.logger.Info("Balance modified", map[string]any{
		"user_id":        userID,
		"transaction_id": txn.TransactionID,
		"amount":         amount,
		"actor":          actor,
		"new_balance":    w.Balance(),
	})

	return w.Balance(), nil
}

// ListTransactions returns the user's balance-change history in append
// order. The wallet must exist so missing users surface as not-found
// instead of an empty history.
func (s *Service) ListTransactions(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	if _, err := s.walletRepo.GetByUserID(ctx, userID); err != nil {
		return nil, err
	}
	return s.transactionRepo.ListByUserID(ctx, userID)
}
