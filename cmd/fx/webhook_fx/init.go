package webhook_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"hermes/internal/api/controllers"
	"hermes/internal/repositories"
	"hermes/internal/services"
)

var Module = fx.Provide(
	provideWebhookEventRepository,
	provideWebhookService,
	provideWebhookController,
)

func provideWebhookEventRepository(db *gorm.DB) repositories.WebhookEventRepositoryInterface {
	return repositories.NewWebhookEventRepository(db)
}

func provideWebhookService(
	webhookRepo repositories.WebhookEventRepositoryInterface,
	paymentRepo repositories.PaymentRepositoryInterface,
	paymentService services.PaymentServiceInterface,
) services.WebhookServiceInterface {
	return services.NewWebhookService(webhookRepo, paymentRepo, paymentService)
}

func provideWebhookController(webhookService services.WebhookServiceInterface) *controllers.WebhookController {
	return controllers.NewWebhookController(webhookService)
}
