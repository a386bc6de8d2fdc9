package api

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ecotours/internal/api/controllers"
	"ecotours/internal/config"
	"ecotours/internal/models/db_models"
	"ecotours/pkg/middleware"
	"ecotours/pkg/utils"
)

const healthPath = "/health"

// Controllers groups every handler set mounted by the router.
type Controllers struct {
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

// crud is the handler set shared by every resource.
type crud interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func NewRouter(cfg *config.Config, log *zap.Logger, jwtManager *utils.JWTManager, ctl Controllers) *gin.Engine {
	if !cfg.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recovery(log))
	if !cfg.Server.Debug {
		r.Use(middleware.AllowedHosts(cfg.Security.AllowedHosts, healthPath))
		r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
			SSLRedirect: cfg.Security.SSLRedirect,
			HSTSSeconds: cfg.Security.HSTSSeconds,
			Exempt:      []string{healthPath},
		}))
	}
	r.Use(middleware.CORSMiddleware(cfg.Security.CORSAllowedOrigins))
	r.Use(middleware.RequestOrigin())
	r.Use(middleware.BodyLimit(cfg.Server.MaxUploadBytes))

	r.GET(healthPath, ctl.Health.Health)

	if cfg.Media.Backend == "local" {
		r.Static(strings.TrimSuffix(cfg.Media.URL, "/"), cfg.Media.Root)
	}

	RegisterRoutes(r.Group(cfg.Server.APIPrefix), jwtManager, ctl)

	return r
}

func RegisterRoutes(api *gin.RouterGroup, jwtManager *utils.JWTManager, ctl Controllers) {
	auth := middleware.JWTAuthMiddleware(jwtManager)
	admin := []gin.HandlerFunc{auth, middleware.RoleMiddleware(db_models.RoleAdmin)}
	guarded := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, admin...), h)
	}

	// public reads, admin writes
	catalog := func(path string, ctl crud) *gin.RouterGroup {
		g := api.Group(path)
		g.GET("/", ctl.List)
		g.GET("/:id/", ctl.Get)
		g.POST("/create/", guarded(ctl.Create)...)
		g.PUT("/:id/update/", guarded(ctl.Update)...)
		g.PATCH("/:id/update/", guarded(ctl.Update)...)
		g.DELETE("/:id/delete/", guarded(ctl.Delete)...)
		return g
	}

	places := catalog("/places", ctl.Places)
	places.DELETE("/itinerary-photo/:photoId/delete/", guarded(ctl.Places.DeleteItineraryPhoto)...)
	places.DELETE("/sub-image/:imageId/delete/", guarded(ctl.Places.DeleteSubImage)...)

	catalog("/items", ctl.Items)
	catalog("/services", ctl.Services)
	catalog("/posts", ctl.Posts)
	catalog("/front", ctl.Front)
	catalog("/contacts", ctl.Contacts)
	api.GET("/contact/", ctl.Contacts.List)
	api.GET("/social-links/", ctl.Contacts.SocialLinks)

	bookings := api.Group("/bookings")
	{
		bookings.GET("/places/", ctl.Places.ListForBooking)
		bookings.POST("/create/", middleware.OptionalJWTMiddleware(jwtManager), ctl.Bookings.Create)
		bookings.GET("/", guarded(ctl.Bookings.List)...)
		bookings.GET("/:id/", guarded(ctl.Bookings.Get)...)
		bookings.PUT("/:id/update/", guarded(ctl.Bookings.Update)...)
		bookings.PATCH("/:id/update/", guarded(ctl.Bookings.Update)...)
		bookings.DELETE("/:id/delete/", guarded(ctl.Bookings.Delete)...)
	}

	user := api.Group("/user")
	{
		user.POST("/create/", ctl.UserDetails.Create)
		user.GET("/", guarded(ctl.UserDetails.List)...)
		user.GET("/:id/", guarded(ctl.UserDetails.Get)...)
		user.PUT("/:id/update/", guarded(ctl.UserDetails.Update)...)
		user.PATCH("/:id/update/", guarded(ctl.UserDetails.Update)...)
		user.DELETE("/:id/delete/", guarded(ctl.UserDetails.Delete)...)
	}

	gallery := api.Group("/gallery/photos")
	{
		gallery.GET("/", ctl.Gallery.List)
		gallery.POST("/", guarded(ctl.Gallery.Create)...)
		gallery.POST("/create/", guarded(ctl.Gallery.Create)...)
		gallery.DELETE("/:id/delete/", guarded(ctl.Gallery.Delete)...)
	}

	api.GET("/dashboard/stats/", guarded(ctl.Dashboard.GetDashboard)...)

	accounts := api.Group("/auth")
	{
		accounts.POST("/register/", ctl.Accounts.Register)
		accounts.POST("/login/", ctl.Accounts.Login)
		accounts.GET("/me/", auth, ctl.Accounts.Me)
		accounts.POST("/password/forgot/", ctl.Accounts.ForgotPassword)
		accounts.POST("/password/reset/", ctl.Accounts.ResetPassword)
	}
}
