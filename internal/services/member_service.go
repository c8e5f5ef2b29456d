package services

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"whatsup/internal/models/domain"
	"whatsup/internal/models/request_models"
	"whatsup/internal/store"
	"whatsup/pkg/utils"
)

type MemberServiceInterface interface {
	CanAddMember(familyID string) (bool, error)
	SaveMember(familyID string, request request_models.SaveMemberRequest) (domain.Member, error)
	React(familyID, memberID, label string) (bool, error)
	Comment(familyID, memberID, author, text string) (bool, error)
}

type MemberService struct {
	store *store.FamilyStore
}

func NewMemberService(familyStore *store.FamilyStore) MemberServiceInterface {
	return &MemberService{store: familyStore}
}

// CanAddMember is the entitlement gate: a non-premium family is capped at
// the free-tier member count. Premium removes the cap.
func (s *MemberService) CanAddMember(familyID string) (bool, error) {
	family, ok := s.store.GetFamily(familyID)
	if !ok {
		return false, utils.ErrFamilyNotFound
	}
	return family.IsPremium || len(family.Members) < domain.FreeTierMemberLimit, nil
}

// SaveMember upserts the editor's output. An existing id is replaced in
// place, keeping its list position; a fresh id appends. Appending past the
// free-tier limit is blocked unless the family is premium.
func (s *MemberService) SaveMember(familyID string, request request_models.SaveMemberRequest) (domain.Member, error) {
	family, ok := s.store.GetFamily(familyID)
	if !ok {
		return domain.Member{}, utils.ErrFamilyNotFound
	}
	if strings.TrimSpace(request.Household) == "" {
		return domain.Member{}, utils.ErrHouseholdRequired
	}

	var existing *domain.Member
	if request.ID != "" {
		existing = family.MemberByID(request.ID)
	}

	if existing == nil && !family.IsPremium && len(family.Members) >= domain.FreeTierMemberLimit {
		return domain.Member{}, utils.ErrMemberLimitReached
	}

	member := buildMember(existing, request)

	if existing != nil {
		for i := range family.Members {
			if family.Members[i].ID == member.ID {
				family.Members[i] = member
				break
			}
		}
	} else {
		family.Members = append(family.Members, member)
	}

	s.store.ReplaceFamily(family)
	return member, nil
}

// buildMember assembles a member from the editor form. Editing carries the
// existing reactions and comments over untouched; creating starts both
// empty.
func buildMember(existing *domain.Member, request request_models.SaveMemberRequest) domain.Member {
	member := domain.Member{
		ID:        request.ID,
		Name:      request.Name,
		PhotoURL:  request.PhotoURL,
		Household: request.Household,
		SubGroup:  strings.TrimSpace(request.SubGroup),
		Greeting:  request.Greeting,
		Updates:   []domain.Update{},
		Reactions: map[string]int{},
		Comments:  []domain.Comment{},
	}

	if existing != nil {
		member.ID = existing.ID
		member.Reactions = existing.Reactions
		member.Comments = existing.Comments
	} else if member.ID == "" {
		member.ID = uuid.New().String()
	}

	if member.PhotoURL == "" {
		member.PhotoURL = utils.DefaultMemberPhotoURL
	}

	for _, u := range request.Updates {
		if strings.TrimSpace(u.Text) == "" {
			continue
		}
		category := u.Category
		if category == "" {
			category = domain.HighlightCategories[0]
		}
		member.Updates = append(member.Updates, domain.Update{Category: category, Text: u.Text})
	}

	return member
}

// React bumps one reaction counter. The label must belong to the fixed
// reaction set; an unknown member id is a silent no-op, mirroring the
// permissive filter semantics of the board.
func (s *MemberService) React(familyID, memberID, label string) (bool, error) {
	if !domain.IsReactionLabel(label) {
		return false, utils.ErrUnknownReaction
	}

	family, ok := s.store.GetFamily(familyID)
	if !ok {
		return false, utils.ErrFamilyNotFound
	}

	member := family.MemberByID(memberID)
	if member == nil {
		return false, nil
	}

	member.Reactions[label]++
	s.store.ReplaceFamily(family)
	return true, nil
}

// Comment appends to a member's comment list. Whitespace-only text and
// unknown member ids are no-ops.
func (s *MemberService) Comment(familyID, memberID, author, text string) (bool, error) {
	if strings.TrimSpace(text) == "" {
		return false, nil
	}

	family, ok := s.store.GetFamily(familyID)
	if !ok {
		return false, utils.ErrFamilyNotFound
	}

	member := family.MemberByID(memberID)
	if member == nil {
		return false, nil
	}

	member.Comments = append(member.Comments, domain.Comment{
		ID:        uuid.New().String(),
		Author:    author,
		Text:      text,
		Timestamp: time.Now().UnixMilli(),
	})
	s.store.ReplaceFamily(family)
	return true, nil
}
