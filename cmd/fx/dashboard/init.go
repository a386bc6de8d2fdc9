package dashboard

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ecotours/internal/api/controllers"
	"ecotours/internal/repositories"
	"ecotours/internal/services"
)

var Module = fx.Provide(
	provideDashboardRepo, provideDashboardService, controllers.NewDashboardController,
)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideDashboardService(dashboardRepo repositories.DashboardRepository, log *zap.Logger) services.DashboardService {
	return services.NewDashboardService(dashboardRepo, log)
}
