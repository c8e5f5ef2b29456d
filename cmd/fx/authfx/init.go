package authfx

import (
	"go.uber.org/fx"

	"whatsup/internal/api/controllers"
	"whatsup/internal/services"
	"whatsup/internal/store"
)

var Module = fx.Provide(
	provideAuthService, provideAuthController)

func provideAuthService(familyStore *store.FamilyStore) services.AuthServiceInterface {
	return services.NewAuthService(familyStore)
}

func provideAuthController(authService services.AuthServiceInterface) *controllers.AuthController {
	return controllers.NewAuthController(authService)
}
