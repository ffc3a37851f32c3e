package main

import (
	"context"
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"hostlane/cmd/fx/account_fx"
	"hostlane/cmd/fx/config_fx"
	"hostlane/cmd/fx/controllers_fx"
	"hostlane/cmd/fx/db_fx"
	"hostlane/cmd/fx/mail_fx"
	"hostlane/cmd/fx/memcache_fx"
	"hostlane/cmd/fx/order_fx"
	"hostlane/cmd/fx/plan_fx"
	"hostlane/cmd/fx/promo_fx"
	"hostlane/cmd/fx/redis_fx"
	"hostlane/cmd/fx/storage_fx"
	"hostlane/internal/api/controllers"
	"hostlane/internal/config"
	"hostlane/internal/infra"
	"hostlane/internal/models/db_models"
	"hostlane/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		redis_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		storage_fx.Module,
		plan_fx.Module,
		promo_fx.Module,
		account_fx.Module,
		order_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	addr := fmt.Sprintf("%s:%d", cfg.ServiceHost, cfg.ServicePort)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Infof("Starting HTTP server at %s", addr)
				if err := engine.Run(addr); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	redisClient *infra.RedisClient,
	planController *controllers.PlanController,
	adminPlanController *controllers.AdminPlanController,
	accountController *controllers.AccountController,
	promoController *controllers.PromoController,
	orderController *controllers.OrderController,
	uploadController *controllers.UploadController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, cfg, redisClient,
		planController, adminPlanController, accountController,
		promoController, orderController, uploadController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	cfg *config.Config,
	redisClient *infra.RedisClient,
	planController *controllers.PlanController,
	adminPlanController *controllers.AdminPlanController,
	accountController *controllers.AccountController,
	promoController *controllers.PromoController,
	orderController *controllers.OrderController,
	uploadController *controllers.UploadController) {

	authRequired := middleware.JWTAuthMiddleware(redisClient)
	adminOnly := middleware.RoleMiddleware(db_models.RoleAdmin)

	// Files stored by the local fallback backend.
	r.Static("/uploads", cfg.Upload.Dir)

	plansGroup := r.Group("/plans")
	plansGroup.GET("", planController.GetAllPlans)
	plansGroup.GET("/category/:category", planController.GetPlansByCategory)
	plansGroup.GET("/:id", planController.GetPlanById)

	authGroup := r.Group("/auth")
	authGroup.POST("/signup", accountController.SignUp)
	authGroup.POST("/login", accountController.Login)
	authGroup.POST("/logout", accountController.Logout)
	authGroup.POST("/forgot-password", accountController.ForgotPassword)
	authGroup.POST("/reset-password", accountController.ResetPassword)
	authGroup.GET("/me", authRequired, accountController.Me)

	promoGroup := r.Group("/promo")
	promoGroup.POST("/validate", promoController.ValidatePromo)

	ordersGroup := r.Group("/orders", authRequired)
	ordersGroup.POST("", orderController.CreateOrder)
	ordersGroup.GET("", orderController.ListMyOrders)
	ordersGroup.POST("/checkout", orderController.CreateCheckout)

	r.POST("/payment/webhook", orderController.PaymentWebhook)

	r.POST("/upload", authRequired, uploadController.UploadPaymentProof)

	adminGroup := r.Group("/admin", authRequired, adminOnly)
	adminGroup.GET("/plans", adminPlanController.ListAllPlans)
	adminGroup.POST("/plans", adminPlanController.CreatePlan)
	adminGroup.PATCH("/plans/:id", adminPlanController.UpdatePlan)
	adminGroup.DELETE("/plans/:id", adminPlanController.DeletePlan)
	adminGroup.POST("/plans/:id/features", adminPlanController.AddFeature)
	adminGroup.DELETE("/plans/:id/features/:featureId", adminPlanController.RemoveFeature)
	adminGroup.DELETE("/plans/:id/features", adminPlanController.ClearFeatures)
	adminGroup.POST("/plans/:id/generate-description", adminPlanController.GenerateDescription)
	adminGroup.GET("/promos", promoController.ListPromos)
	adminGroup.POST("/promos", promoController.CreatePromo)
	adminGroup.PATCH("/orders/:id/status", orderController.UpdateOrderStatus)
}
