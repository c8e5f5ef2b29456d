package familyfx

import (
	"go.uber.org/fx"

	"whatsup/internal/api/controllers"
	"whatsup/internal/services"
	"whatsup/internal/store"
)

var Module = fx.Provide(
	provideFamilyService, provideFamilyController)

func provideFamilyService(familyStore *store.FamilyStore, mail services.MailServiceInterface) services.FamilyServiceInterface {
	return services.NewFamilyService(familyStore, mail)
}

func provideFamilyController(familyService services.FamilyServiceInterface) *controllers.FamilyController {
	return controllers.NewFamilyController(familyService)
}
