package store

import (
	"log"

	"whatsup/internal/models/domain"
	"whatsup/pkg/utils"
)

// Demo credentials for the seeded family.
const (
	DemoFamilyID   = "fam_001"
	DemoAdminEmail = "kate@mccallister.com"
	demoPassword   = "password"
)

// SeedFamily builds the McCallister demo family. The admin password is
// hashed at startup so nothing plaintext sits in the aggregate.
func SeedFamily() domain.Family {
	hash, err := utils.HashPassword(demoPassword)
	if err != nil {
		log.Fatalf("seed password hash: %v", err)
	}

	return domain.Family{
		ID:           DemoFamilyID,
		Name:         "The McCallisters",
		Code:         "KEVIN",
		AdminEmail:   DemoAdminEmail,
		PasswordHash: hash,
		Households:   []string{"Peter & Kate's House", "Frank & Leslie's House"},
		IsPremium:    false,
		Members: []domain.Member{
			{
				ID:        "m1",
				Name:      "Kevin",
				Household: "Peter & Kate's House",
				SubGroup:  "The Kids",
				PhotoURL:  "https://picsum.photos/seed/kevin/400/600",
				Greeting:  "Merry Christmas, ya filthy animals! I successfully defended the house again this year.",
				Updates: []domain.Update{
					{Category: "School", Text: "Top of the class in trap design."},
					{Category: "Travel", Text: "Went to New York... alone."},
				},
				Reactions: map[string]int{"😱": 12, "🎄": 8},
				Comments:  []domain.Comment{},
			},
			{
				ID:        "m2",
				Name:      "Buzz",
				Household: "Peter & Kate's House",
				SubGroup:  "The Kids",
				PhotoURL:  "https://picsum.photos/seed/buzz/400/600",
				Greeting:  "I wouldn't let you sleep in my room if you were growing on my",
				Updates: []domain.Update{
					{Category: "Pet", Text: "My tarantula fits in my pocket now."},
				},
				Reactions: map[string]int{"🕷️": 5},
				Comments:  []domain.Comment{},
			},
			{
				ID:        "m3",
				Name:      "Kate",
				Household: "Peter & Kate's House",
				PhotoURL:  "https://picsum.photos/seed/kate/400/600",
				Greeting:  "Wishing everyone a peaceful holiday where we remember all our children.",
				Updates: []domain.Update{
					{Category: "Work", Text: "Planning next year's Paris trip."},
				},
				Reactions: map[string]int{"❤️": 15},
				Comments:  []domain.Comment{},
			},
			{
				ID:        "m4",
				Name:      "Fuller",
				Household: "Frank & Leslie's House",
				SubGroup:  "The Cousins",
				PhotoURL:  "https://picsum.photos/seed/fuller/400/600",
				Greeting:  "Go easy on the Pepsi!",
				Updates: []domain.Update{
					{Category: "Diet", Text: "Cutting back on soda."},
				},
				Reactions: map[string]int{"🥤": 20},
				Comments:  []domain.Comment{},
			},
			{
				ID:        "m5",
				Name:      "Uncle Frank",
				Household: "Frank & Leslie's House",
				PhotoURL:  "https://picsum.photos/seed/frank/400/600",
				Greeting:  "Look what you did, you little jerk.",
				Updates: []domain.Update{
					{Category: "Travel", Text: "Looking for free shrimp cocktails."},
				},
				Reactions: map[string]int{"🍤": 3},
				Comments:  []domain.Comment{},
			},
		},
	}
}
