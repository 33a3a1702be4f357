package model

import (
	"time"
)

// Transaction represents the database model for the append-only balance
// log. Rows are never updated or deleted.
type Transaction struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	TransactionID string    `gorm:"uniqueIndex;not null;size:64"`
	UserID        uint64    `gorm:"not null;index"`
	Amount        int64     `gorm:"not null"`
	Actor         string    `gorm:"not null;size:64"`
	CreatedAt     time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
