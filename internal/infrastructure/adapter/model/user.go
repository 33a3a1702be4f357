package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	ExternalID string    `gorm:"uniqueIndex;not null;size:64"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// Wallet represents the database model for wallets. One row per user.
type Wallet struct {
	UserID    uint64    `gorm:"primaryKey"`
	Balance   int64     `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Wallet
func (Wallet) TableName() string {
	return "wallets"
}
