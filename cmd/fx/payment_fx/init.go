package payment_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"hermes/cmd/fx/provider_fx"
	"hermes/internal/api/controllers"
	"hermes/internal/repositories"
	"hermes/internal/services"
	"hermes/pkg/provider"
)

var Module = fx.Provide(
	providePaymentRepository,
	providePaymentService,
	providePaymentController,
)

func providePaymentRepository(db *gorm.DB) repositories.PaymentRepositoryInterface {
	return repositories.NewPaymentRepository(db)
}

func providePaymentService(paymentRepo repositories.PaymentRepositoryInterface, prov provider.Provider) services.PaymentServiceInterface {
	return services.NewPaymentService(paymentRepo, prov, provider_fx.CallbackURL())
}

func providePaymentController(paymentService services.PaymentServiceInterface) *controllers.PaymentController {
	return controllers.NewPaymentController(paymentService)
}
