package response_models

import (
	"time"
)

type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	// "day" | "week" | "month"
	Interval string `json:"interval"`
	// IANA zone used for bucketing
	Timezone string `json:"timezone,omitempty"`
}

type KPIBlock struct {
	TotalPlaces       int64 `json:"total_places"`
	TotalBookings     int64 `json:"total_bookings"`
	PendingBookings   int64 `json:"pending_bookings"`
	ApprovedBookings  int64 `json:"approved_bookings"`
	RejectedBookings  int64 `json:"rejected_bookings"`
	CancelledBookings int64 `json:"cancelled_bookings"`
	NewBookings       int64 `json:"new_bookings"`
	TotalMessages     int64 `json:"total_messages"`
	NewMessages       int64 `json:"new_messages"`

	// price sum of approved bookings created in the range
	BookedValue float64 `json:"booked_value"`
}

type SeriesPoint struct {
	Bucket time.Time `json:"bucket"`
	Value  int64     `json:"value"`
}

type CountSeries struct {
	Points []SeriesPoint `json:"points"`
}

type TopPlace struct {
	PlaceID uint   `json:"place_id"`
	Name    string `json:"name"`
	Count   int64  `json:"count"`
}

type DashboardReport struct {
	Range          TimeRange   `json:"range"`
	KPIs           KPIBlock    `json:"kpis"`
	Bookings       CountSeries `json:"bookings"`
	TopPlaces      []TopPlace  `json:"top_places"`
	RecentBookings []Booking   `json:"recent_bookings"`
}
