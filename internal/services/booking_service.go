package services

import (
	"context"

	"go.uber.org/zap"

	"ecotours/internal/models/db_models"
	"ecotours/internal/models/request_models"
	"ecotours/internal/models/response_models"
	"ecotours/internal/repositories"
	"ecotours/pkg/utils"
)

type BookingServiceInterface = CrudService[request_models.BookingInput, response_models.Booking]

// BookingService assigns ownership from the authenticated caller; the
// client never writes the user of a booking.
type BookingService struct {
	*resource[db_models.Booking, request_models.BookingInput, response_models.Booking]
	places   repositories.PlaceRepository
	notifier NotificationServiceInterface
}

func NewBookingService(
	repo repositories.BookingRepository,
	places repositories.PlaceRepository,
	notifier NotificationServiceInterface,
	log *zap.Logger,
) BookingServiceInterface {
	return &BookingService{
		resource: &resource[db_models.Booking, request_models.BookingInput, response_models.Booking]{
			name:     "booking",
			notFound: utils.ErrBookingNotFound,
			repo:     repo,
			log:      log,
			newInput: request_models.NewBookingInput,
			prefill:  (*request_models.BookingInput).FromModel,
			apply: func(in *request_models.BookingInput, m *db_models.Booking, _ *uploads) error {
				return in.Apply(m)
			},
			present: func(_ context.Context, m *db_models.Booking) response_models.Booking {
				return response_models.NewBooking(m)
			},
		},
		places:   places,
		notifier: notifier,
	}
}

func (s *BookingService) Create(ctx context.Context, bind func(*request_models.BookingInput) error) (*response_models.Booking, error) {
	caller, authenticated := utils.PrincipalFromContext(ctx)

	booking, err := s.create(ctx, func(in *request_models.BookingInput) error {
		if err := bind(in); err != nil {
			return err
		}
		// only staff decide on the outcome of a booking
		if !caller.IsAdmin() {
			in.Status = ""
		}
		return nil
	}, func(m *db_models.Booking) {
		m.UserID = nil
		if authenticated {
			owner := caller.UserID
			m.UserID = &owner
		}
	})
	if err != nil {
		return nil, err
	}

	placeName := ""
	if place, err := s.places.FindByID(ctx, booking.PlaceID); err == nil && place != nil {
		placeName = place.Name
	}
	s.notifier.BookingCreated(ctx, booking, placeName)

	out := s.present(ctx, booking)
	return &out, nil
}
