package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecotours/internal/models/db_models"
	"ecotours/internal/testutil"
	"ecotours/pkg/utils"
)

func TestCrudRepository_Lifecycle(t *testing.T) {
	repo := NewCrudRepository[db_models.Service](testutil.NewDB(t))
	ctx := context.Background()

	for _, name := range []string{"Safari", "Surfing", "Hiking"} {
		require.NoError(t, repo.Create(ctx, &db_models.Service{ServiceTitle: name}))
	}

	all, err := repo.List(ctx, utils.Page{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Safari", all[0].ServiceTitle)

	second, err := repo.List(ctx, utils.Page{Number: 2, Size: 2})
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "Hiking", second[0].ServiceTitle)

	updated, err := repo.Update(ctx, all[1].ID, func(s *db_models.Service) error {
		s.ServiceTitle = "Whale watching"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Whale watching", updated.ServiceTitle)

	deleted, err := repo.Delete(ctx, all[0].ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, "Safari", deleted.ServiceTitle)

	gone, err := repo.FindByID(ctx, all[0].ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestCrudRepository_MissingRows(t *testing.T) {
	repo := NewCrudRepository[db_models.Item](testutil.NewDB(t))
	ctx := context.Background()

	updated, err := repo.Update(ctx, 99, func(*db_models.Item) error {
		t.Fatal("mutate must not run for a missing row")
		return nil
	})
	require.NoError(t, err)
	assert.Nil(t, updated)

	deleted, err := repo.Delete(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, deleted)
}

func TestBookingRepository_PlaceMustExist(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewBookingRepository(db)

	err := repo.Create(context.Background(), &db_models.Booking{
		PlaceID:     7,
		UserName:    "Guest",
		Email:       "guest@example.com",
		ArrivalDate: time.Now(),
		Adults:      1,
	})

	var verr *utils.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{`Invalid pk "7" - object does not exist.`}, verr.Fields["place"])
}

func TestContactRepository_Latest(t *testing.T) {
	repo := NewContactRepository(testutil.NewDB(t))
	ctx := context.Background()

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, latest)

	stamp := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	older := &db_models.Contact{FacebookLink: "https://facebook.com/old"}
	older.CreatedAt = stamp.Add(-time.Hour)
	tieA := &db_models.Contact{FacebookLink: "https://facebook.com/a"}
	tieA.CreatedAt = stamp
	tieB := &db_models.Contact{FacebookLink: "https://facebook.com/b"}
	tieB.CreatedAt = stamp
	for _, c := range []*db_models.Contact{tieA, tieB, older} {
		require.NoError(t, repo.Create(ctx, c))
	}

	latest, err = repo.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "https://facebook.com/b", latest.FacebookLink)
}
