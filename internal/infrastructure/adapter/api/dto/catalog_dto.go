package dto

// ItemRequest represents an item create or update
type ItemRequest struct {
	Name  string `json:"name" binding:"required"`
	Price int64  `json:"price" binding:"min=0"`
}

// ItemResponse represents one catalog item
type ItemResponse struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// QuestRequest represents a quest create or update
type QuestRequest struct {
	Number string `json:"number" binding:"required"`
	Reward int64  `json:"reward" binding:"min=0"`
	Title  string `json:"title"`
}

// QuestResponse represents one reward definition
type QuestResponse struct {
	ID     uint64 `json:"id"`
	Number string `json:"number"`
	Reward int64  `json:"reward"`
	Title  string `json:"title"`
}

// InventoryLineResponse represents one row of a user's inventory
type InventoryLineResponse struct {
	ItemName string `json:"itemName"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
}

// InventoryResponse represents a user's balance plus holdings
type InventoryResponse struct {
	Balance int64                   `json:"balance"`
	Items   []InventoryLineResponse `json:"items"`
}
