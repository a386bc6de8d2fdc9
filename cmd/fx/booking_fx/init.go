package booking_fx

import (
	"go.uber.org/fx"

	"ecotours/internal/api/controllers"
	"ecotours/internal/repositories"
	"ecotours/internal/services"
)

var Module = fx.Provide(
	repositories.NewBookingRepository, services.NewBookingService, controllers.NewBookingController,
)
