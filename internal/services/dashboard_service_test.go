package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ecotours/internal/models/db_models"
	resp "ecotours/internal/models/response_models"
	"ecotours/internal/repositories"
	"ecotours/internal/testutil"
	"ecotours/pkg/utils"
)

func utc(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func seedBooking(t *testing.T, db *gorm.DB, placeID uint, status string, price float64, created string) {
	t.Helper()
	b := &db_models.Booking{
		PlaceID:     placeID,
		UserName:    "Guest",
		Email:       "guest@example.com",
		ArrivalDate: utc("2025-06-01T00:00:00Z"),
		Price:       price,
		Adults:      1,
		Status:      status,
	}
	b.CreatedAt = utc(created)
	require.NoError(t, db.Create(b).Error)
}

func newDashboardFixture(t *testing.T) DashboardService {
	db := testutil.NewDB(t)
	ella := &db_models.Place{Name: "Ella Rock"}
	yala := &db_models.Place{Name: "Yala"}
	require.NoError(t, db.Create(ella).Error)
	require.NoError(t, db.Create(yala).Error)

	seedBooking(t, db, ella.ID, db_models.BookingApproved, 100, "2025-03-03T10:00:00Z")
	seedBooking(t, db, ella.ID, db_models.BookingPending, 50, "2025-03-03T23:30:00Z")
	seedBooking(t, db, yala.ID, db_models.BookingRejected, 70, "2025-03-20T08:00:00Z")
	seedBooking(t, db, yala.ID, db_models.BookingApproved, 999, "2025-01-01T08:00:00Z")

	require.NoError(t, db.Create(&db_models.UserDetails{UserName: "A", UserEmail: "a@example.com", UserMessage: "hi"}).Error)

	return NewDashboardService(repositories.NewDashboardRepository(db), testutil.NopLogger())
}

func march(interval, tz string) resp.TimeRange {
	return resp.TimeRange{
		Start:    utc("2025-03-01T00:00:00Z"),
		End:      utc("2025-03-31T23:59:59Z"),
		Interval: interval,
		Timezone: tz,
	}
}

func TestDashboardService_KPIs(t *testing.T) {
	svc := newDashboardFixture(t)

	report, err := svc.BuildDashboard(context.Background(), march("day", "UTC"))
	require.NoError(t, err)

	kpis := report.KPIs
	assert.EqualValues(t, 2, kpis.TotalPlaces)
	assert.EqualValues(t, 4, kpis.TotalBookings)
	assert.EqualValues(t, 2, kpis.ApprovedBookings)
	assert.EqualValues(t, 1, kpis.PendingBookings)
	assert.EqualValues(t, 1, kpis.RejectedBookings)
	assert.EqualValues(t, 0, kpis.CancelledBookings)
	assert.EqualValues(t, 3, kpis.NewBookings)
	assert.EqualValues(t, 1, kpis.TotalMessages)
	assert.Equal(t, 100.0, kpis.BookedValue, "only approved bookings inside the range count")

	require.Len(t, report.TopPlaces, 2)
	assert.Equal(t, "Ella Rock", report.TopPlaces[0].Name)
	assert.EqualValues(t, 2, report.TopPlaces[0].Count)

	require.Len(t, report.RecentBookings, 4)
	assert.Equal(t, db_models.BookingRejected, report.RecentBookings[0].Status)
}

func TestDashboardService_Series(t *testing.T) {
	svc := newDashboardFixture(t)

	report, err := svc.BuildDashboard(context.Background(), march("day", "UTC"))
	require.NoError(t, err)
	require.Len(t, report.Bookings.Points, 2)
	assert.True(t, report.Bookings.Points[0].Bucket.Equal(utc("2025-03-03T00:00:00Z")))
	assert.EqualValues(t, 2, report.Bookings.Points[0].Value)

	// 23:30 UTC is already the next day in Colombo
	report, err = svc.BuildDashboard(context.Background(), march("day", "Asia/Colombo"))
	require.NoError(t, err)
	assert.Len(t, report.Bookings.Points, 3)

	report, err = svc.BuildDashboard(context.Background(), march("week", "UTC"))
	require.NoError(t, err)
	require.Len(t, report.Bookings.Points, 2)
	assert.True(t, report.Bookings.Points[1].Bucket.Equal(utc("2025-03-17T00:00:00Z")), "weeks start on Monday")

	report, err = svc.BuildDashboard(context.Background(), march("month", "UTC"))
	require.NoError(t, err)
	require.Len(t, report.Bookings.Points, 1)
	assert.EqualValues(t, 3, report.Bookings.Points[0].Value)
}

func TestDashboardService_UnknownZone(t *testing.T) {
	svc := newDashboardFixture(t)

	_, err := svc.BuildDashboard(context.Background(), march("day", "Mars/Olympus"))
	var verr *utils.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "tz")
}

func TestNormalizeRange(t *testing.T) {
	r := normalizeRange(resp.TimeRange{Start: utc("2025-05-01T00:00:00Z"), End: utc("2025-04-01T00:00:00Z")})
	assert.Equal(t, "day", r.Interval)
	assert.Equal(t, "UTC", r.Timezone)
	assert.True(t, r.Start.Before(r.End))

	r = normalizeRange(resp.TimeRange{})
	assert.InDelta(t, 30*24*time.Hour, r.End.Sub(r.Start), float64(time.Minute))
}
