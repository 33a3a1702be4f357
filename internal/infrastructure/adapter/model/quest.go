package model

import (
	"time"
)

// Quest represents the database model for reward definitions
type Quest struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Number    string    `gorm:"uniqueIndex;not null;size:16"`
	Reward    int64     `gorm:"not null"`
	Title     string    `gorm:"not null;size:256"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Quest
func (Quest) TableName() string {
	return "quests"
}
