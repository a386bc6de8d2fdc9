package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	dbm "ecotours/internal/models/db_models"
)

type DashboardRepository interface {
	// KPIs / counts
	CountPlaces(ctx context.Context) (int64, error)
	CountBookingsByStatus(ctx context.Context) (map[string]int64, error)
	CountNewBookings(ctx context.Context, start, end time.Time) (int64, error)
	CountMessages(ctx context.Context) (int64, error)
	CountNewMessages(ctx context.Context, start, end time.Time) (int64, error)
	// BookedValue sums the price of approved bookings created in the period.
	BookedValue(ctx context.Context, start, end time.Time) (float64, error)

	// Time series input; bucketing happens in the service so it works the
	// same on every supported database.
	BookingTimes(ctx context.Context, start, end time.Time) ([]time.Time, error)

	TopPlaces(ctx context.Context, start, end time.Time, limit int) ([]PlaceCountRow, error)
	RecentBookings(ctx context.Context, limit int) ([]dbm.Booking, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// ---------- Row helpers ----------
type StatusCountRow struct {
	Status string `gorm:"column:status"`
	Count  int64  `gorm:"column:count"`
}

type PlaceCountRow struct {
	PlaceID uint   `gorm:"column:place_id"`
	Name    string `gorm:"column:name"`
	Count   int64  `gorm:"column:count"`
}

// ---------- Counts ----------
func (r *dashboardRepository) CountPlaces(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Place{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountBookingsByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []StatusCountRow
	err := r.db.WithContext(ctx).
		Model(&dbm.Booking{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}

func (r *dashboardRepository) CountNewBookings(ctx context.Context, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Booking{}).
		Where("created_at BETWEEN ? AND ?", start.UTC(), end.UTC()).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountMessages(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.UserDetails{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountNewMessages(ctx context.Context, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.UserDetails{}).
		Where("created_at BETWEEN ? AND ?", start.UTC(), end.UTC()).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) BookedValue(ctx context.Context, start, end time.Time) (float64, error) {
	var prices []float64
	err := r.db.WithContext(ctx).
		Model(&dbm.Booking{}).
		Where("status = ?", dbm.BookingApproved).
		Where("created_at BETWEEN ? AND ?", start.UTC(), end.UTC()).
		Pluck("price", &prices).Error
	if err != nil {
		return 0, err
	}

	var sum float64
	for _, p := range prices {
		sum += p
	}
	return sum, nil
}

// ---------- Series ----------
func (r *dashboardRepository) BookingTimes(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	var times []time.Time
	err := r.db.WithContext(ctx).
		Model(&dbm.Booking{}).
		Where("created_at BETWEEN ? AND ?", start.UTC(), end.UTC()).
		Order("created_at ASC").
		Pluck("created_at", &times).Error
	return times, err
}

// ---------- Top places ----------
func (r *dashboardRepository) TopPlaces(ctx context.Context, start, end time.Time, limit int) ([]PlaceCountRow, error) {
	var rows []PlaceCountRow
	err := r.db.WithContext(ctx).
		Table("bookings b").
		Select("b.place_id, p.name, COUNT(*) AS count").
		Joins("JOIN places p ON p.id = b.place_id").
		Where("b.created_at BETWEEN ? AND ?", start.UTC(), end.UTC()).
		Group("b.place_id, p.name").
		Order("count DESC, b.place_id ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// ---------- Recent bookings ----------
func (r *dashboardRepository) RecentBookings(ctx context.Context, limit int) ([]dbm.Booking, error) {
	var bookings []dbm.Booking
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&bookings).Error
	return bookings, err
}
