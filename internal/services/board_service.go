package services

import (
	"log"

	"whatsup/internal/models/domain"
	"whatsup/internal/models/response_models"
	"whatsup/internal/store"
	"whatsup/pkg/utils"
)

type BoardServiceInterface interface {
	BuildView(familyID string) (response_models.BoardView, error)
	ToggleCollapse(familyID string, household string) (bool, error)
}

type BoardService struct {
	store *store.FamilyStore
}

func NewBoardService(familyStore *store.FamilyStore) BoardServiceInterface {
	return &BoardService{store: familyStore}
}

// BuildView renders the two-level hierarchy. Household order follows
// family.Households exactly; inside a household, members keep member-list
// order and sub-groups appear in first-seen order. Empty households still
// render. Members pointing at an unknown household go to Unassigned.
func (b *BoardService) BuildView(familyID string) (response_models.BoardView, error) {
	family, ok := b.store.GetFamily(familyID)
	if !ok {
		return response_models.BoardView{}, utils.ErrFamilyNotFound
	}
	collapsed := b.store.Collapsed(familyID)

	view := response_models.BoardView{
		FamilyID:   family.ID,
		FamilyName: family.Name,
		IsPremium:  family.IsPremium,
		Households: make([]response_models.HouseholdView, 0, len(family.Households)),
	}

	for _, name := range family.Households {
		view.Households = append(view.Households, buildHousehold(family, name, collapsed[name]))
	}

	for _, m := range family.Members {
		if !family.HasHousehold(m.Household) {
			view.Unassigned = append(view.Unassigned, m)
		}
	}
	if len(view.Unassigned) > 0 {
		log.Printf("family %s has %d member(s) outside any household", family.ID, len(view.Unassigned))
	}

	return view, nil
}

func buildHousehold(family domain.Family, name string, collapsed bool) response_models.HouseholdView {
	hv := response_models.HouseholdView{
		Name:      name,
		Collapsed: collapsed,
		Ungrouped: []domain.Member{},
		SubGroups: []response_models.SubGroupView{},
	}

	var houseMembers []domain.Member
	for _, m := range family.Members {
		if m.Household == name {
			houseMembers = append(houseMembers, m)
		}
	}
	hv.MemberCount = len(houseMembers)

	// Sub-group display order is first appearance in the member list, not
	// alphabetical.
	var groupOrder []string
	seen := make(map[string]bool)
	for _, m := range houseMembers {
		if m.SubGroup == "" {
			hv.Ungrouped = append(hv.Ungrouped, m)
			continue
		}
		if !seen[m.SubGroup] {
			seen[m.SubGroup] = true
			groupOrder = append(groupOrder, m.SubGroup)
		}
	}

	for _, group := range groupOrder {
		sg := response_models.SubGroupView{Name: group}
		for _, m := range houseMembers {
			if m.SubGroup == group {
				sg.Members = append(sg.Members, m)
			}
		}
		hv.SubGroups = append(hv.SubGroups, sg)
	}

	return hv
}

// ToggleCollapse flips one household's collapse flag and returns the new
// state. Households start expanded.
func (b *BoardService) ToggleCollapse(familyID string, household string) (bool, error) {
	if _, ok := b.store.GetFamily(familyID); !ok {
		return false, utils.ErrFamilyNotFound
	}
	return b.store.ToggleCollapse(familyID, household), nil
}
