package entity

import (
	"strings"
	"time"

	errs "github.com/fbp-works/economy-service/internal/domain/error"
)

// Item is a purchasable shop entry. Prices are non-negative and may be
// edited administratively.
type Item struct {
	ID        uint64
	Name      string
	Price     int64
	UpdatedAt time.Time
}

// NewItem creates a shop item after validating name and price
func NewItem(name string, price int64, now time.Time) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.ErrInvalidName
	}
	if price < 0 {
		return nil, errs.ErrInvalidAmount
	}

	return &Item{
		Name:      name,
		Price:     price,
		UpdatedAt: now,
	}, nil
}

// Rename updates the item's name and price
func (i *Item) Rename(name string, price int64, now time.Time) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.ErrInvalidName
	}
	if price < 0 {
		return errs.ErrInvalidAmount
	}

	i.Name = name
	i.Price = price
	i.UpdatedAt = now
	return nil
}

// InventoryEntry tracks how many of one item a user owns. Created on first
// purchase with quantity 1, incremented on repeat purchases.
type InventoryEntry struct {
	UserID    uint64
	ItemID    uint64
	Quantity  int64
	UpdatedAt time.Time
}

// ItemUsage is an append-only record of one consumed item, e.g. a vote
// ticket spent on a target.
type ItemUsage struct {
	ID        uint64
	UserID    uint64
	ItemID    uint64
	TargetRef string
	Action    string
	CreatedAt time.Time
}
