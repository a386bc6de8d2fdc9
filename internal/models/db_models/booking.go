package db_models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	BookingPending   = "pending"
	BookingApproved  = "approved"
	BookingRejected  = "rejected"
	BookingCancelled = "cancelled"
)

type Booking struct {
	BaseModel
	PlaceID      uint                        `gorm:"not null;index"`
	Place        Place                       `gorm:"constraint:OnDelete:CASCADE"`
	UserName     string                      `gorm:"size:255;not null"`
	Email        string                      `gorm:"size:254;not null"`
	Phone        string                      `gorm:"size:30"`
	ArrivalDate  time.Time                   `gorm:"type:date;not null"`
	Price        float64                     `gorm:"type:decimal(10,2);not null;default:0"`
	Adults       int                         `gorm:"not null;default:1"`
	Children     int                         `gorm:"not null;default:0"`
	ChildrenAges datatypes.JSONSlice[string]
	Description  string                      `gorm:"type:text"`
	Status       string                      `gorm:"size:20;not null;default:pending"`

	UserID *uint    `gorm:"index"`
	User   *Account `gorm:"constraint:OnDelete:SET NULL"`
}
