package services

import (
	"fmt"
	"strings"

	"whatsup/internal/models/domain"
	"whatsup/internal/models/response_models"
	"whatsup/internal/store"
	"whatsup/pkg/utils"
)

type FamilyServiceInterface interface {
	UpdateHouseholds(familyID string, households []string) (domain.Family, error)
	Share(familyID string) (response_models.ShareResponse, error)
	Invite(familyID string, email string) error
}

type FamilyService struct {
	store *store.FamilyStore
	mail  MailServiceInterface
}

func NewFamilyService(familyStore *store.FamilyStore, mail MailServiceInterface) FamilyServiceInterface {
	return &FamilyService{store: familyStore, mail: mail}
}

// UpdateHouseholds replaces the ordered household list. Removing or
// renaming a household can leave members pointing at nothing; those surface
// through the board's Unassigned diagnostic rather than disappearing.
func (f *FamilyService) UpdateHouseholds(familyID string, households []string) (domain.Family, error) {
	family, ok := f.store.GetFamily(familyID)
	if !ok {
		return domain.Family{}, utils.ErrFamilyNotFound
	}

	cleaned := make([]string, 0, len(households))
	seen := make(map[string]bool)
	for _, h := range households {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if seen[h] {
			return domain.Family{}, utils.ErrDuplicateHousehold
		}
		seen[h] = true
		cleaned = append(cleaned, h)
	}

	family.Households = cleaned
	f.store.ReplaceFamily(family)
	return family, nil
}

// Share returns the join code with ready-made invite text.
func (f *FamilyService) Share(familyID string) (response_models.ShareResponse, error) {
	family, ok := f.store.GetFamily(familyID)
	if !ok {
		return response_models.ShareResponse{}, utils.ErrFamilyNotFound
	}

	return response_models.ShareResponse{
		Code:       family.Code,
		FamilyName: family.Name,
		InviteText: fmt.Sprintf("Join %s's holiday board! Use code %s.", family.Name, family.Code),
	}, nil
}

// Invite emails the join code to one recipient.
func (f *FamilyService) Invite(familyID string, email string) error {
	family, ok := f.store.GetFamily(familyID)
	if !ok {
		return utils.ErrFamilyNotFound
	}

	subject := fmt.Sprintf("You're invited to %s's holiday board", family.Name)
	body := fmt.Sprintf(
		"Happy holidays! %s is sharing their yearly updates. Enter the family code %s to join as a guest.",
		family.Name, family.Code,
	)
	return f.mail.SendInvite(email, subject, body)
}
