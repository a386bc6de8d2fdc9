package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ecotours/internal/infra"
	"ecotours/internal/models/db_models"
	"ecotours/pkg/utils"
)

type PlaceSummary struct {
	ID    uint
	Name  string
	Price float64
}

type PlaceRepository interface {
	Create(ctx context.Context, place *db_models.Place) error
	FindByID(ctx context.Context, id uint) (*db_models.Place, error)
	List(ctx context.Context, page utils.Page) ([]db_models.Place, error)
	// Update loads the place with its images and itinerary, applies mutate
	// and writes back the resulting aggregate: itinerary days missing from
	// place.ItineraryDays are removed, entries with a zero id are created.
	Update(ctx context.Context, id uint, mutate func(*db_models.Place) error) (*db_models.Place, error)
	// Delete removes the place with its images, itinerary and bookings.
	Delete(ctx context.Context, id uint) (*db_models.Place, error)

	DeleteItineraryPhoto(ctx context.Context, photoID uint) (*db_models.ItineraryPhoto, error)
	DeleteSubImage(ctx context.Context, imageID uint) (*db_models.PlaceImage, error)
	ListForBooking(ctx context.Context) ([]PlaceSummary, error)
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

func withPlaceDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("SubImages", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("ItineraryDays", func(db *gorm.DB) *gorm.DB {
			return db.Order("day ASC").Order("id ASC")
		}).
		Preload("ItineraryDays.Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		})
}

func (r *placeRepository) Create(ctx context.Context, place *db_models.Place) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(place).Error
	})
}

func (r *placeRepository) FindByID(ctx context.Context, id uint) (*db_models.Place, error) {
	return findPlace(r.db.WithContext(ctx), id)
}

func findPlace(db *gorm.DB, id uint) (*db_models.Place, error) {
	var place db_models.Place
	err := db.Scopes(withPlaceDetails).First(&place, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &place, nil
}

func (r *placeRepository) List(ctx context.Context, page utils.Page) ([]db_models.Place, error) {
	places := make([]db_models.Place, 0)
	err := r.db.WithContext(ctx).
		Scopes(withPlaceDetails, paginate(page)).
		Order("id ASC").
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) Update(ctx context.Context, id uint, mutate func(*db_models.Place) error) (*db_models.Place, error) {
	var updated *db_models.Place
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var locked db_models.Place
		if err := infra.LockForUpdate(tx).First(&locked, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		place, err := findPlace(tx, id)
		if err != nil {
			return err
		}
		if err := mutate(place); err != nil {
			return err
		}
		if err := savePlace(tx, place); err != nil {
			return err
		}

		updated, err = findPlace(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func savePlace(tx *gorm.DB, place *db_models.Place) error {
	if err := tx.Omit(clause.Associations).Save(place).Error; err != nil {
		return err
	}

	for i := range place.SubImages {
		img := &place.SubImages[i]
		if img.ID != 0 {
			continue
		}
		img.PlaceID = place.ID
		if err := tx.Create(img).Error; err != nil {
			return err
		}
	}

	keep := make([]uint, 0, len(place.ItineraryDays))
	for _, day := range place.ItineraryDays {
		if day.ID != 0 {
			keep = append(keep, day.ID)
		}
	}
	stale := tx.Model(&db_models.ItineraryDay{}).Select("id").Where("place_id = ?", place.ID)
	if len(keep) > 0 {
		stale = stale.Where("id NOT IN ?", keep)
	}
	if err := tx.Where("itinerary_day_id IN (?)", stale).Delete(&db_models.ItineraryPhoto{}).Error; err != nil {
		return err
	}
	staleDays := tx.Where("place_id = ?", place.ID)
	if len(keep) > 0 {
		staleDays = staleDays.Where("id NOT IN ?", keep)
	}
	if err := staleDays.Delete(&db_models.ItineraryDay{}).Error; err != nil {
		return err
	}

	for i := range place.ItineraryDays {
		day := &place.ItineraryDays[i]
		day.PlaceID = place.ID
		if err := tx.Omit(clause.Associations).Save(day).Error; err != nil {
			return err
		}
		for j := range day.Photos {
			photo := &day.Photos[j]
			if photo.ID != 0 {
				continue
			}
			photo.ItineraryDayID = day.ID
			if err := tx.Create(photo).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *placeRepository) Delete(ctx context.Context, id uint) (*db_models.Place, error) {
	var deleted *db_models.Place
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var locked db_models.Place
		if err := infra.LockForUpdate(tx).First(&locked, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		place, err := findPlace(tx, id)
		if err != nil {
			return err
		}

		days := tx.Model(&db_models.ItineraryDay{}).Select("id").Where("place_id = ?", id)
		steps := []func() error{
			func() error {
				return tx.Where("itinerary_day_id IN (?)", days).Delete(&db_models.ItineraryPhoto{}).Error
			},
			func() error { return tx.Where("place_id = ?", id).Delete(&db_models.ItineraryDay{}).Error },
			func() error { return tx.Where("place_id = ?", id).Delete(&db_models.PlaceImage{}).Error },
			func() error { return tx.Where("place_id = ?", id).Delete(&db_models.Booking{}).Error },
			func() error { return tx.Delete(&db_models.Place{}, id).Error },
		}
		for _, step := range steps {
			if err := step(); err != nil {
				return err
			}
		}

		deleted = place
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func (r *placeRepository) DeleteItineraryPhoto(ctx context.Context, photoID uint) (*db_models.ItineraryPhoto, error) {
	return deleteOne[db_models.ItineraryPhoto](r.db.WithContext(ctx), photoID)
}

func (r *placeRepository) DeleteSubImage(ctx context.Context, imageID uint) (*db_models.PlaceImage, error) {
	return deleteOne[db_models.PlaceImage](r.db.WithContext(ctx), imageID)
}

func deleteOne[T any](db *gorm.DB, id uint) (*T, error) {
	var deleted *T
	err := db.Transaction(func(tx *gorm.DB) error {
		var row T
		if err := infra.LockForUpdate(tx).First(&row, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Delete(&row).Error; err != nil {
			return err
		}
		deleted = &row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func (r *placeRepository) ListForBooking(ctx context.Context) ([]PlaceSummary, error) {
	summaries := make([]PlaceSummary, 0)
	err := r.db.WithContext(ctx).
		Model(&db_models.Place{}).
		Select("id", "name", "price").
		Order("id ASC").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}
