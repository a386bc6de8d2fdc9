package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"ecotours/internal/models/db_models"
	"ecotours/pkg/utils"
)

type BookingRepository = CrudRepository[db_models.Booking]

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return NewCrudRepository(db, WithBeforeSave(placeMustExist))
}

func placeMustExist(tx *gorm.DB, booking *db_models.Booking) error {
	var count int64
	if err := tx.Model(&db_models.Place{}).Where("id = ?", booking.PlaceID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return utils.NewValidationError("place",
			fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", booking.PlaceID))
	}
	return nil
}
