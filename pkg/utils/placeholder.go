package utils

import (
	"fmt"
	"math/rand"
)

// DefaultMemberPhotoURL is substituted when the editor submits no photo.
const DefaultMemberPhotoURL = "https://picsum.photos/400/600"

// RandomPortraitURL returns a seeded placeholder portrait. Used as the
// fallback when image generation fails.
func RandomPortraitURL() string {
	return fmt.Sprintf("https://picsum.photos/seed/%d/400/600", rand.Int63())
}
