package order_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"hostlane/internal/config"
	"hostlane/internal/repositories"
	"hostlane/internal/services"
)

var Module = fx.Provide(
	provideOrderRepo, provideOrderService, provideGatewayService)

func provideOrderRepo(db *gorm.DB) repositories.IOrderRepository {
	return repositories.NewOrderRepository(db)
}

func provideOrderService(
	orderRepo repositories.IOrderRepository,
	planRepo repositories.IPlanRepository,
	accountRepo repositories.AccountRepository,
	promoService services.PromoServiceInterface,
	mailService services.IMailService,
) services.OrderServiceInterface {
	return services.NewOrderService(orderRepo, planRepo, accountRepo, promoService, mailService)
}

func provideGatewayService(orderRepo repositories.IOrderRepository, cfg *config.Config) (services.GatewayService, error) {
	return services.NewGatewayService(orderRepo, cfg.PayOS)
}
