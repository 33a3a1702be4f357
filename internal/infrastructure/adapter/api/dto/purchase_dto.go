package dto

// PurchaseRequest represents a purchase attempt for one catalog item
type PurchaseRequest struct {
	ItemID uint64 `json:"itemId" binding:"required"`
}

// PurchaseResponse represents the outcome of a purchase attempt
type PurchaseResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	NewBalance int64  `json:"newBalance"`
}

// RedemptionRequest represents consuming one held item against a target
type RedemptionRequest struct {
	ItemName  string `json:"itemName" binding:"required"`
	TargetRef string `json:"targetRef" binding:"required"`
	Action    string `json:"action" binding:"required"`
}

// RedemptionResponse represents the outcome of a redemption
type RedemptionResponse struct {
	Remaining  int64 `json:"remaining"`
	TargetUses int64 `json:"targetUses"`
}
