package model

import (
	"time"
)

// User represents the database model for loyalty members
type User struct {
	ID           string `gorm:"primaryKey;size:36"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string `gorm:"not null;size:255"`
	FirstName    string `gorm:"size:100"`
	LastName     string `gorm:"size:100"`
	DateOfBirth  string `gorm:"size:10"`
	Gender       string `gorm:"size:30"`
	Nationality  string `gorm:"size:60"`
	Phone        string `gorm:"size:30"`
	Address      string `gorm:"type:text"`
	MembershipID string `gorm:"uniqueIndex;size:30"`

	CurrentPoints int `gorm:"not null;default:0;check:current_points >= 0"`
	TotalEarned   int `gorm:"not null;default:0"`
	TotalUsed     int `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
