package entity

import "time"

// ActorSystem identifies balance changes issued by the service itself,
// such as quest reward grants.
const ActorSystem = "SYSTEM"

// Transaction is an immutable, append-only record of one balance change.
// The sum of a user's transaction amounts equals their wallet balance.
type Transaction struct {
	ID            uint64
	TransactionID string
	UserID        uint64
	Amount        int64
	Actor         string
	CreatedAt     time.Time
}

// NewTransaction creates a transaction record attributing a balance
// change to an actor
func NewTransaction(transactionID string, userID uint64, amount int64, actor string, now time.Time) *Transaction {
	return &Transaction{
		TransactionID: transactionID,
		UserID:        userID,
		Amount:        amount,
		Actor:         actor,
		CreatedAt:     now,
	}
}
