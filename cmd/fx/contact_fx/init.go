package contact_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"ecotours/internal/api/controllers"
	"ecotours/internal/models/db_models"
	"ecotours/internal/repositories"
	"ecotours/internal/services"
)

var Module = fx.Provide(
	repositories.NewContactRepository, services.NewContactService, controllers.NewContactController,
	provideUserDetailsRepo, services.NewUserDetailsService, controllers.NewUserDetailsController,
)

func provideUserDetailsRepo(db *gorm.DB) repositories.CrudRepository[db_models.UserDetails] {
	return repositories.NewCrudRepository[db_models.UserDetails](db)
}
