package model

import (
	"time"
)

// PointHistoryEntry represents the database model for the append-only
// point history log. Rows are inserted once and never updated.
type PointHistoryEntry struct {
	ID          string `gorm:"primaryKey;size:36"`
	UserID      string `gorm:"not null;index;size:36"`
	Type        string `gorm:"not null;size:20"`
	Points      int    `gorm:"not null;check:points > 0"`
	Description string `gorm:"not null;type:text"`

	CreatedAt time.Time `gorm:"not null;index"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for PointHistoryEntry
func (PointHistoryEntry) TableName() string {
	return "point_history"
}
