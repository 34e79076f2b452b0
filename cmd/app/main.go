package main

import (
	"context"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"log"
	"os"

	"hermes/cmd/fx/db_fx"
	"hermes/cmd/fx/payment_fx"
	"hermes/cmd/fx/provider_fx"
	"hermes/cmd/fx/webhook_fx"
	"hermes/internal/api/controllers"
	"hermes/internal/infra"
	mem "hermes/pkg/memcache"
	"hermes/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		provider_fx.Module,
		payment_fx.Module,
		webhook_fx.Module,

		fx.Provide(provideRevokedTokens),
		fx.Provide(ProvideRouter),
		fx.Invoke(infra.AutoMigrate),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func provideRevokedTokens() mem.RevokedTokenStore {
	return mem.NewRevokedTokens()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "3001"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	revoked mem.RevokedTokenStore,
	paymentController *controllers.PaymentController,
	webhookController *controllers.WebhookController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, revoked, paymentController, webhookController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	revoked mem.RevokedTokenStore,
	paymentController *controllers.PaymentController,
	webhookController *controllers.WebhookController) {

	paymentsGroup := r.Group("/payments")
	paymentsGroup.Use(middleware.JWTAuthMiddleware(revoked))
	paymentsGroup.POST("", paymentController.CreatePayment)
	paymentsGroup.GET("/:reference", paymentController.GetPayment)
	paymentsGroup.PATCH("/:reference/status", middleware.RoleMiddleware("admin"), paymentController.UpdatePaymentStatus)

	webhooksGroup := r.Group("/webhooks")
	webhooksGroup.POST("/payments", webhookController.HandlePaymentWebhook)
}
