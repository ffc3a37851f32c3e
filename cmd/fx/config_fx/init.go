package config_fx

import (
	"go.uber.org/fx"

	"hostlane/internal/config"
)

var Module = fx.Provide(
	config.NewConfig)
