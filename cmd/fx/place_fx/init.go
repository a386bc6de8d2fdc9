package place_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"ecotours/internal/api/controllers"
	"ecotours/internal/repositories"
	"ecotours/internal/services"
)

var Module = fx.Provide(
	providePlaceRepo, services.NewPlaceService, controllers.NewPlaceController,
)

func providePlaceRepo(db *gorm.DB) repositories.PlaceRepository {
	return repositories.NewPlaceRepository(db)
}
