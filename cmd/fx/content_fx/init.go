package content_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"ecotours/internal/api/controllers"
	"ecotours/internal/models/db_models"
	"ecotours/internal/repositories"
	"ecotours/internal/services"
)

var Module = fx.Options(
	fx.Provide(
		newRepo[db_models.Item],
		newRepo[db_models.Service],
		newRepo[db_models.GalleryPhoto],
		newRepo[db_models.Post],
		newRepo[db_models.Front],
	),
	fx.Provide(
		services.NewItemService,
		services.NewServicesService,
		services.NewGalleryService,
		services.NewPostService,
		services.NewFrontService,
	),
	fx.Provide(
		controllers.NewItemController,
		controllers.NewServiceController,
		controllers.NewGalleryController,
		controllers.NewPostController,
		controllers.NewFrontController,
	),
)

func newRepo[T any](db *gorm.DB) repositories.CrudRepository[T] {
	return repositories.NewCrudRepository[T](db)
}
