package storefx

import (
	"go.uber.org/fx"

	"whatsup/internal/store"
)

var Module = fx.Provide(provideFamilyStore)

func provideFamilyStore() *store.FamilyStore {
	return store.NewFamilyStore(store.SeedFamily())
}
