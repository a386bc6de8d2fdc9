package controllers_fx

import (
	"go.uber.org/fx"

	"ecotours/internal/api"
	"ecotours/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewHealthController),
	fx.Provide(provideControllers))

type controllerParams struct {
	fx.In

	Accounts    *controllers.AccountController
	Places      *controllers.PlaceController
	Bookings    *controllers.BookingController
	Items       *controllers.ItemController
	Services    *controllers.ServiceController
	Gallery     *controllers.GalleryController
	Posts       *controllers.PostController
	Front       *controllers.FrontController
	Contacts    *controllers.ContactController
	UserDetails *controllers.UserDetailsController
	Dashboard   *controllers.DashboardController
	Health      *controllers.HealthController
}

func provideControllers(p controllerParams) api.Controllers {
	return api.Controllers{
		Accounts:    p.Accounts,
		Places:      p.Places,
		Bookings:    p.Bookings,
		Items:       p.Items,
		Services:    p.Services,
		Gallery:     p.Gallery,
		Posts:       p.Posts,
		Front:       p.Front,
		Contacts:    p.Contacts,
		UserDetails: p.UserDetails,
		Dashboard:   p.Dashboard,
		Health:      p.Health,
	}
}
