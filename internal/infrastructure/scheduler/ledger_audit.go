package scheduler

import (
	"context"

	coreport "github.com/fbp-works/economy-service/internal/domain/port/core"
	"github.com/fbp-works/economy-service/internal/domain/port/persistence"
	"github.com/robfig/cron/v3"
)

// LedgerAuditor periodically checks that every wallet balance equals the
// sum of that user's transaction amounts. Mismatches are logged, never
// repaired automatically.
type LedgerAuditor struct {
	wallets      persistence.WalletRepository
	walletAudit  persistence.WalletAuditRepository
	transactions persistence.TransactionRepository
	logger       coreport.Logger
	schedule     string
	cron         *cron.Cron
}

// NewLedgerAuditor creates a new LedgerAuditor
func NewLedgerAuditor(
	wallets persistence.WalletRepository,
	walletAudit persistence.WalletAuditRepository,
	transactions persistence.TransactionRepository,
	logger coreport.Logger,
	schedule string,
) *LedgerAuditor {
	return &LedgerAuditor{
		wallets:      wallets,
		walletAudit:  walletAudit,
		transactions: transactions,
		logger:       logger,
		schedule:     schedule,
	}
}

// Start registers the audit job and begins the scheduler
func (a *LedgerAuditor) Start() error {
	a.cron = cron.New()
	if _, err := a.cron.AddFunc(a.schedule, func() {
		a.RunOnce(context.Background())
	}); err != nil {
		return err
	}

	a.cron.Start()
	a.logger.Info("Ledger audit scheduled", map[string]any{
		"schedule": a.schedule,
	})
	return nil
}

// Stop stops the scheduler and waits for a running audit to finish
func (a *LedgerAuditor) Stop() {
	if a.cron == nil {
		return
	}
	ctx := a.cron.Stop()
	<-ctx.Done()
}

// RunOnce audits every wallet once and returns the number of mismatches
func (a *LedgerAuditor) RunOnce(ctx context.Context) int {
	userIDs, err := a.walletAudit.ListUserIDs(ctx)
	if err != nil {
		a.logger.Error("Ledger audit could not list wallets", map[string]any{
			"error": err.Error(),
		})
		return 0
	}

	mismatches := 0
	for _, userID := range userIDs {
		wallet, err := a.wallets.GetByUserID(ctx, userID)
		if err != nil {
			a.logger.Error("Ledger audit could not read wallet", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
			continue
		}

		sum, err := a.transactions.SumByUserID(ctx, userID)
		if err != nil {
			a.logger.Error("Ledger audit could not sum transactions", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
			continue
		}

		if wallet.Balance() != sum {
			mismatches++
			a.logger.Error("Wallet balance does not match transaction log", map[string]any{
				"error_type":      "data_integrity",
				"user_id":         userID,
				"balance":         wallet.Balance(),
				"transaction_sum": sum,
				"drift":           wallet.Balance() - sum,
			})
		}
	}

	a.logger.Info("Ledger audit completed", map[string]any{
		"wallets":    len(userIDs),
		"mismatches": mismatches,
	})
	return mismatches
}
