package response_models

import "whatsup/internal/models/domain"

// SubGroupView is one level-2 branch inside a household, in first-seen
// order over the household's member list.
type SubGroupView struct {
	Name    string          `json:"name"`
	Members []domain.Member `json:"members"`
}

// HouseholdView is one level-1 section of the board.
type HouseholdView struct {
	Name        string          `json:"name"`
	Collapsed   bool            `json:"collapsed"`
	MemberCount int             `json:"member_count"`
	Ungrouped   []domain.Member `json:"ungrouped"`
	SubGroups   []SubGroupView  `json:"sub_groups"`
}

// BoardView is the full rendered hierarchy. Unassigned lists members whose
// household name matches nothing in the family's household list; they are
// excluded from every HouseholdView and surfaced here instead of dropped.
type BoardView struct {
	FamilyID   string          `json:"family_id"`
	FamilyName string          `json:"family_name"`
	IsPremium  bool            `json:"is_premium"`
	Households []HouseholdView `json:"households"`
	Unassigned []domain.Member `json:"unassigned,omitempty"`
}
