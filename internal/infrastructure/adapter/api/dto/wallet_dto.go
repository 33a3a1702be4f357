package dto

import "time"

// BalanceResponse represents the API response for a user's balance
type BalanceResponse struct {
	UserID     uint64 `json:"userId"`
	ExternalID string `json:"externalId"`
	Balance    int64  `json:"balance"`
}

// GrantRequest represents an administrative balance change
type GrantRequest struct {
	Amount int64  `json:"amount" binding:"required"`
	Actor  string `json:"actor" binding:"required"`
}

// GrantResponse represents the API response for an applied grant
type GrantResponse struct {
	UserID     uint64 `json:"userId"`
	Amount     int64  `json:"amount"`
	NewBalance int64  `json:"newBalance"`
}

// TransactionResponse represents one balance-change record
type TransactionResponse struct {
	TransactionID string    `json:"transactionId"`
	Amount        int64     `json:"amount"`
	Actor         string    `json:"actor"`
	CreatedAt     time.Time `json:"createdAt"`
}

// TransactionListResponse represents a user's balance-change history
type TransactionListResponse struct {
	UserID       uint64                `json:"userId"`
	Transactions []TransactionResponse `json:"transactions"`
}
