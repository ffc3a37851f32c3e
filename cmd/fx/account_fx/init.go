package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"hostlane/internal/infra"
	"hostlane/internal/repositories"
	"hostlane/internal/services"
	mem "hostlane/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountRepo, provideAccountService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	mailService services.IMailService,
	resetTokens mem.ResetTokenStore,
	redisClient *infra.RedisClient,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, mailService, resetTokens, redisClient)
}
