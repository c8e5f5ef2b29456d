package paymentfx

import (
	"os"
	"time"

	"go.uber.org/fx"

	"whatsup/internal/api/controllers"
	"whatsup/internal/services"
	"whatsup/internal/store"
)

var Module = fx.Provide(
	providePaymentProvider, providePaymentService, providePaymentController)

func providePaymentProvider() services.PaymentProvider {
	delay := 1500 * time.Millisecond
	if v := os.Getenv("PAYMENT_MOCK_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			delay = d
		}
	}
	return &services.MockPaymentProvider{Delay: delay}
}

func providePaymentService(familyStore *store.FamilyStore, provider services.PaymentProvider) services.PaymentServiceInterface {
	return services.NewPaymentService(familyStore, provider)
}

func providePaymentController(paymentService services.PaymentServiceInterface) *controllers.PaymentController {
	return controllers.NewPaymentController(paymentService)
}
