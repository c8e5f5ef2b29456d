package domain

// Member is one profile card: photo, greeting, life updates, reactions and
// comments. A member belongs to exactly one household and at most one
// sub-group within it.
type Member struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	PhotoURL  string         `json:"photo_url"`
	Household string         `json:"household"`
	SubGroup  string         `json:"sub_group,omitempty"`
	Greeting  string         `json:"greeting"`
	Updates   []Update       `json:"updates"`
	Reactions map[string]int `json:"reactions"`
	Comments  []Comment      `json:"comments"`
}

// Update is one life-highlight entry. List order is display order.
type Update struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// Comment is an append-only note left on a member card.
type Comment struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// Clone deep-copies the member so callers can edit without aliasing the
// stored aggregate.
func (m Member) Clone() Member {
	next := m
	next.Updates = append([]Update(nil), m.Updates...)
	next.Comments = append([]Comment(nil), m.Comments...)
	next.Reactions = make(map[string]int, len(m.Reactions))
	for k, v := range m.Reactions {
		next.Reactions[k] = v
	}
	return next
}

// HighlightCategories is the fixed category set offered by the editor.
// Free text is tolerated on existing data.
var HighlightCategories = []string{
	"Work", "School", "Travel", "Hobby", "Life Event", "Health", "Achievement",
}

// ReactionLabels is the fixed reaction set accepted at the API boundary.
var ReactionLabels = []string{"❤️", "🎄", "❄️", "🥂", "🍪", "😂"}

// IsReactionLabel reports whether label belongs to the fixed reaction set.
func IsReactionLabel(label string) bool {
	for _, l := range ReactionLabels {
		if l == label {
			return true
		}
	}
	return false
}
