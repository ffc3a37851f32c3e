package promo_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"hostlane/internal/repositories"
	"hostlane/internal/services"
)

var Module = fx.Provide(
	providePromoRepo, providePromoService)

func providePromoRepo(db *gorm.DB) repositories.IPromoRepository {
	return repositories.NewPromoRepository(db)
}

func providePromoService(promoRepo repositories.IPromoRepository, planRepo repositories.IPlanRepository) services.PromoServiceInterface {
	return services.NewPromoService(promoRepo, planRepo)
}
