package usecase

import "context"

// PurchaseResult describes the outcome of one purchase attempt. Success is
// false for expected rejections (busy key, insufficient funds); the message
// is always safe to show the caller.
type PurchaseResult struct {
	Success    bool
	Message    string
	NewBalance int64
}

// PurchaseUseCase serializes purchase attempts per (user, item) pair and
// performs the deduct-then-credit-inventory sequence as one critical
// section.
type PurchaseUseCase interface {
	Purchase(ctx context.Context, userID, itemID uint64) (*PurchaseResult, error)
}
