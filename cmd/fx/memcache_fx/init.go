package memcache_fx

import (
	"go.uber.org/fx"

	mem "hostlane/pkg/memcache"
)

var Module = fx.Provide(
	provideResetTokenStore)

func provideResetTokenStore() mem.ResetTokenStore {
	return mem.NewResetTokens()
}
