package controllers_fx

import (
	"go.uber.org/fx"

	"hostlane/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPlanController),
	fx.Provide(controllers.NewAdminPlanController),
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewPromoController),
	fx.Provide(controllers.NewOrderController),
	fx.Provide(controllers.NewUploadController))
