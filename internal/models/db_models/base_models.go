package db_models

import (
	"time"

	"gorm.io/gorm"
)

type BaseModel struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// Timestamps are stored in UTC regardless of the database session zone.
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now().UTC()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
	return nil
}

func (b *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now().UTC()
	return nil
}

// All lists every persisted model, parents first.
func All() []interface{} {
	return []interface{}{
		&Account{},
		&Place{},
		&PlaceImage{},
		&ItineraryDay{},
		&ItineraryPhoto{},
		&Booking{},
		&Item{},
		&Service{},
		&GalleryPhoto{},
		&Post{},
		&Contact{},
		&Front{},
		&UserDetails{},
	}
}
