package model

import (
	"time"
)

// PointRequest represents the database model for point requests
type PointRequest struct {
	ID               string `gorm:"primaryKey;size:36"`
	UserID           string `gorm:"not null;index;size:36"`
	FlightNumber     string `gorm:"not null;size:10"`
	DepartureAirport string `gorm:"not null;size:3"`
	ArrivalAirport   string `gorm:"not null;size:3"`
	DepartureDate    string `gorm:"not null;size:10"`
	AdditionalNotes  string `gorm:"type:text"`
	Status           string `gorm:"not null;size:20;default:pending;index"`
	PointsAwarded    int    `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for PointRequest
func (PointRequest) TableName() string {
	return "point_requests"
}
