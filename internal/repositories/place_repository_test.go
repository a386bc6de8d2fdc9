package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecotours/internal/models/db_models"
	"ecotours/internal/testutil"
	"ecotours/pkg/utils"
)

func seedPlace(t *testing.T, repo PlaceRepository, name string) *db_models.Place {
	t.Helper()
	place := &db_models.Place{
		Name:      name,
		Price:     1200,
		MainImage: "/media/places/main/" + name + ".jpg",
		SubImages: []db_models.PlaceImage{{Image: "/media/places/sub_images/a.jpg"}},
		ItineraryDays: []db_models.ItineraryDay{
			{Day: 2, SubDescription: "Hike", Photos: []db_models.ItineraryPhoto{{Image: "/media/places/itinerary/2.jpg"}}},
			{Day: 1, SubDescription: "Arrival", Photos: []db_models.ItineraryPhoto{{Image: "/media/places/itinerary/1.jpg"}}},
		},
	}
	require.NoError(t, repo.Create(context.Background(), place))
	return place
}

func TestPlaceRepository_FindOrdersItinerary(t *testing.T) {
	repo := NewPlaceRepository(testutil.NewDB(t))
	seeded := seedPlace(t, repo, "ella")

	place, err := repo.FindByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	require.NotNil(t, place)
	require.Len(t, place.ItineraryDays, 2)
	assert.Equal(t, 1, place.ItineraryDays[0].Day)
	assert.Equal(t, 2, place.ItineraryDays[1].Day)
	require.Len(t, place.ItineraryDays[0].Photos, 1)
	assert.Len(t, place.SubImages, 1)

	missing, err := repo.FindByID(context.Background(), seeded.ID+100)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPlaceRepository_UpdateReplacesItinerary(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewPlaceRepository(db)
	seeded := seedPlace(t, repo, "kandy")
	ctx := context.Background()

	current, err := repo.FindByID(ctx, seeded.ID)
	require.NoError(t, err)
	keep := current.ItineraryDays[0]

	updated, err := repo.Update(ctx, seeded.ID, func(p *db_models.Place) error {
		p.Name = "Kandy"
		keep.SubDescription = "Temple of the Tooth"
		p.ItineraryDays = []db_models.ItineraryDay{
			keep,
			{Day: 3, SubDescription: "Tea country"},
		}
		return nil
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Kandy", updated.Name)
	require.Len(t, updated.ItineraryDays, 2)
	assert.Equal(t, keep.ID, updated.ItineraryDays[0].ID)
	assert.Equal(t, "Temple of the Tooth", updated.ItineraryDays[0].SubDescription)
	assert.Len(t, updated.ItineraryDays[0].Photos, 1, "kept day keeps its photos")
	assert.Equal(t, 3, updated.ItineraryDays[1].Day)

	var photos int64
	require.NoError(t, db.Model(&db_models.ItineraryPhoto{}).Count(&photos).Error)
	assert.Equal(t, int64(1), photos, "photos of the dropped day are removed")
}

func TestPlaceRepository_UpdateToEmptyItinerary(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewPlaceRepository(db)
	seeded := seedPlace(t, repo, "galle")

	updated, err := repo.Update(context.Background(), seeded.ID, func(p *db_models.Place) error {
		p.ItineraryDays = nil
		return nil
	})
	require.NoError(t, err)
	assert.Empty(t, updated.ItineraryDays)

	var days int64
	require.NoError(t, db.Model(&db_models.ItineraryDay{}).Count(&days).Error)
	assert.Zero(t, days)
}

func TestPlaceRepository_UpdateMissingOrRejected(t *testing.T) {
	repo := NewPlaceRepository(testutil.NewDB(t))
	seeded := seedPlace(t, repo, "mirissa")
	ctx := context.Background()

	missing, err := repo.Update(ctx, seeded.ID+1, func(p *db_models.Place) error { return nil })
	require.NoError(t, err)
	assert.Nil(t, missing)

	rejected := utils.NewValidationError("name", "This field may not be blank.")
	_, err = repo.Update(ctx, seeded.ID, func(p *db_models.Place) error {
		p.Name = ""
		return rejected
	})
	assert.Equal(t, rejected, err)

	place, err := repo.FindByID(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "mirissa", place.Name)
}

func TestPlaceRepository_DeleteCascades(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewPlaceRepository(db)
	bookings := NewBookingRepository(db)
	ctx := context.Background()

	doomed := seedPlace(t, repo, "yala")
	other := seedPlace(t, repo, "sigiriya")
	for _, placeID := range []uint{doomed.ID, other.ID} {
		require.NoError(t, bookings.Create(ctx, &db_models.Booking{
			PlaceID:     placeID,
			UserName:    "Guest",
			Email:       "guest@example.com",
			ArrivalDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
			Adults:      2,
			Status:      db_models.BookingPending,
		}))
	}

	deleted, err := repo.Delete(ctx, doomed.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Len(t, deleted.Images(), 4)

	counts := map[interface{}]int64{
		&db_models.Place{}:          1,
		&db_models.PlaceImage{}:     1,
		&db_models.ItineraryDay{}:   2,
		&db_models.ItineraryPhoto{}: 2,
		&db_models.Booking{}:        1,
	}
	for model, want := range counts {
		var got int64
		require.NoError(t, db.Model(model).Count(&got).Error)
		assert.Equal(t, want, got, "%T", model)
	}

	again, err := repo.Delete(ctx, doomed.ID)
	require.NoError(t, err)
	assert.Nil(t, again)
}

func TestPlaceRepository_DeleteItineraryPhotoAndSubImage(t *testing.T) {
	repo := NewPlaceRepository(testutil.NewDB(t))
	seeded := seedPlace(t, repo, "trinco")
	ctx := context.Background()

	photoID := seeded.ItineraryDays[0].Photos[0].ID
	photo, err := repo.DeleteItineraryPhoto(ctx, photoID)
	require.NoError(t, err)
	require.NotNil(t, photo)
	assert.Equal(t, "/media/places/itinerary/2.jpg", photo.Image)

	photo, err = repo.DeleteItineraryPhoto(ctx, photoID)
	require.NoError(t, err)
	assert.Nil(t, photo)

	img, err := repo.DeleteSubImage(ctx, seeded.SubImages[0].ID)
	require.NoError(t, err)
	require.NotNil(t, img)

	place, err := repo.FindByID(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Empty(t, place.SubImages)
	assert.Len(t, place.Images(), 2)
}

func TestPlaceRepository_ListForBooking(t *testing.T) {
	repo := NewPlaceRepository(testutil.NewDB(t))
	a := seedPlace(t, repo, "a")
	b := seedPlace(t, repo, "b")

	summaries, err := repo.ListForBooking(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []PlaceSummary{
		{ID: a.ID, Name: "a", Price: 1200},
		{ID: b.ID, Name: "b", Price: 1200},
	}, summaries)
}
