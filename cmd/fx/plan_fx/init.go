package plan_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"hostlane/internal/config"
	"hostlane/internal/repositories"
	"hostlane/internal/services"
)

var Module = fx.Provide(
	providePlanRepo, providePlanService, provideCopywriter)

func providePlanRepo(db *gorm.DB) repositories.IPlanRepository {
	return repositories.NewPlanRepository(db)
}

func providePlanService(planRepo repositories.IPlanRepository) services.PlanServiceInterface {
	return services.NewPlanService(planRepo)
}

func provideCopywriter(cfg *config.Config, planRepo repositories.IPlanRepository) (services.CopywriterService, error) {
	return services.NewOpenAICopywriter(cfg.OpenAI.APIKey, cfg.OpenAI.Model, planRepo)
}
