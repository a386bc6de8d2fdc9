package services

import (
	"context"
	"time"
	_ "time/tzdata"

	"go.uber.org/zap"

	dbm "ecotours/internal/models/db_models"
	resp "ecotours/internal/models/response_models"
	"ecotours/internal/repositories"
	"ecotours/pkg/utils"
)

const (
	dashboardTopPlaces = 10
	dashboardRecent    = 10
)

type DashboardService interface {
	BuildDashboard(ctx context.Context, rng resp.TimeRange) (*resp.DashboardReport, error)
}

type dashboardService struct {
	repo repositories.DashboardRepository
	log  *zap.Logger
}

func NewDashboardService(repo repositories.DashboardRepository, log *zap.Logger) DashboardService {
	return &dashboardService{repo: repo, log: log}
}

// normalizeRange ensures sane defaults and ordering
func normalizeRange(r resp.TimeRange) resp.TimeRange {
	out := r
	if out.Interval == "" {
		out.Interval = "day"
	}
	if out.Timezone == "" {
		out.Timezone = "UTC"
	}
	if out.End.IsZero() {
		out.End = time.Now().UTC()
	}
	if out.Start.IsZero() {
		out.Start = out.End.AddDate(0, 0, -30)
	}
	if out.Start.After(out.End) {
		out.Start, out.End = out.End, out.Start
	}
	return out
}

// bucketStart truncates t to the start of its day, ISO week or month in loc.
func bucketStart(t time.Time, interval string, loc *time.Location) time.Time {
	t = t.In(loc)
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	switch interval {
	case "week":
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case "month":
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
	default:
		return day
	}
}

func bucketize(times []time.Time, interval string, loc *time.Location) []resp.SeriesPoint {
	points := make([]resp.SeriesPoint, 0)
	for _, t := range times {
		b := bucketStart(t, interval, loc)
		if n := len(points); n > 0 && points[n-1].Bucket.Equal(b) {
			points[n-1].Value++
			continue
		}
		points = append(points, resp.SeriesPoint{Bucket: b, Value: 1})
	}
	return points
}

func (s *dashboardService) BuildDashboard(ctx context.Context, rng resp.TimeRange) (*resp.DashboardReport, error) {
	rng = normalizeRange(rng)
	loc, err := time.LoadLocation(rng.Timezone)
	if err != nil {
		return nil, utils.NewValidationError("tz", "Unknown time zone.")
	}

	fail := func(op string, err error) error {
		return failure(ctx, s.log, op, "dashboard", 0, err)
	}

	// ---------- Core counts ----------
	places, err := s.repo.CountPlaces(ctx)
	if err != nil {
		return nil, fail("count places", err)
	}
	byStatus, err := s.repo.CountBookingsByStatus(ctx)
	if err != nil {
		return nil, fail("count bookings", err)
	}
	newBookings, err := s.repo.CountNewBookings(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, fail("count new bookings", err)
	}
	messages, err := s.repo.CountMessages(ctx)
	if err != nil {
		return nil, fail("count messages", err)
	}
	newMessages, err := s.repo.CountNewMessages(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, fail("count new messages", err)
	}
	booked, err := s.repo.BookedValue(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, fail("booked value", err)
	}

	var totalBookings int64
	for _, n := range byStatus {
		totalBookings += n
	}

	// ---------- Series ----------
	times, err := s.repo.BookingTimes(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, fail("booking series", err)
	}

	// ---------- Top places ----------
	placeRows, err := s.repo.TopPlaces(ctx, rng.Start, rng.End, dashboardTopPlaces)
	if err != nil {
		return nil, fail("top places", err)
	}
	topPlaces := make([]resp.TopPlace, 0, len(placeRows))
	for _, r := range placeRows {
		topPlaces = append(topPlaces, resp.TopPlace{PlaceID: r.PlaceID, Name: r.Name, Count: r.Count})
	}

	// ---------- Recent bookings ----------
	recentRows, err := s.repo.RecentBookings(ctx, dashboardRecent)
	if err != nil {
		return nil, fail("recent bookings", err)
	}
	recent := make([]resp.Booking, 0, len(recentRows))
	for i := range recentRows {
		recent = append(recent, resp.NewBooking(&recentRows[i]))
	}

	return &resp.DashboardReport{
		Range: rng,
		KPIs: resp.KPIBlock{
			TotalPlaces:       places,
			TotalBookings:     totalBookings,
			PendingBookings:   byStatus[dbm.BookingPending],
			ApprovedBookings:  byStatus[dbm.BookingApproved],
			RejectedBookings:  byStatus[dbm.BookingRejected],
			CancelledBookings: byStatus[dbm.BookingCancelled],
			NewBookings:       newBookings,
			TotalMessages:     messages,
			NewMessages:       newMessages,
			BookedValue:       booked,
		},
		Bookings:       resp.CountSeries{Points: bucketize(times, rng.Interval, loc)},
		TopPlaces:      topPlaces,
		RecentBookings: recent,
	}, nil
}
