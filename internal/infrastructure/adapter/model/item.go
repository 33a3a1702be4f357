package model

import (
	"time"
)

// Item represents the database model for shop items
type Item struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"not null;size:128;index"`
	Price     int64     `gorm:"not null;check:price >= 0"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Item
func (Item) TableName() string {
	return "items"
}

// UserItem represents the database model for inventory entries, keyed by
// (user_id, item_id)
type UserItem struct {
	UserID    uint64    `gorm:"primaryKey"`
	ItemID    uint64    `gorm:"primaryKey"`
	Quantity  int64     `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID"`
	Item Item `gorm:"foreignKey:ItemID;references:ID"`
}

// TableName specifies the table name for UserItem
func (UserItem) TableName() string {
	return "user_items"
}

// ItemUsage represents the database model for item consumption history
type ItemUsage struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID    uint64    `gorm:"not null;index"`
	ItemID    uint64    `gorm:"not null"`
	TargetRef string    `gorm:"not null;size:128;index"`
	Action    string    `gorm:"not null;size:32"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for ItemUsage
func (ItemUsage) TableName() string {
	return "item_usages"
}
