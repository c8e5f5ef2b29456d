package services

import (
	"whatsup/internal/models/domain"
	"whatsup/internal/store"
)

// fixtureFamily mirrors the shape of the seed data at a smaller size:
// two households, one sub-group, a member count below the free-tier cap.
func fixtureFamily() domain.Family {
	return domain.Family{
		ID:         "fam_fix",
		Name:       "The Fixtures",
		Code:       "FIX",
		Households: []string{"A", "B"},
		Members: []domain.Member{
			{ID: "m1", Name: "One", Household: "A", Reactions: map[string]int{}, Comments: []domain.Comment{}},
			{ID: "m2", Name: "Two", Household: "A", SubGroup: "X", Reactions: map[string]int{}, Comments: []domain.Comment{}},
			{ID: "m3", Name: "Three", Household: "B", Reactions: map[string]int{}, Comments: []domain.Comment{}},
		},
	}
}

func newFixtureStore() *store.FamilyStore {
	return store.NewFamilyStore(fixtureFamily())
}

func fixtureFamilyWithID(id string) domain.Family {
	f := fixtureFamily()
	f.ID = id
	return f
}
