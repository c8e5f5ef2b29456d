package services

import (
	"log"
	"strings"

	"github.com/google/uuid"

	"whatsup/internal/models/domain"
	"whatsup/internal/models/request_models"
	"whatsup/internal/models/response_models"
	"whatsup/internal/store"
	"whatsup/pkg/utils"
)

type AuthServiceInterface interface {
	Join(request request_models.JoinRequest) (response_models.SessionResponse, error)
	AdminLogin(request request_models.AdminLoginRequest) (response_models.SessionResponse, error)
	CreateFamily(request request_models.CreateFamilyRequest) (response_models.SessionResponse, error)
	Logout(session domain.Session)
}

type AuthService struct {
	store *store.FamilyStore
}

func NewAuthService(familyStore *store.FamilyStore) AuthServiceInterface {
	return &AuthService{store: familyStore}
}

// Join matches the submitted code case-insensitively against the known
// family codes and yields a guest session.
func (a *AuthService) Join(request request_models.JoinRequest) (response_models.SessionResponse, error) {
	code := strings.ToUpper(strings.TrimSpace(request.Code))

	family, ok := a.store.FindByCode(code)
	if !ok {
		return response_models.SessionResponse{}, utils.ErrInvalidCode
	}

	return a.sessionFor(domain.ModeGuest, family)
}

// AdminLogin requires the exact email and a matching password, yielding an
// admin session bound to that family.
func (a *AuthService) AdminLogin(request request_models.AdminLoginRequest) (response_models.SessionResponse, error) {
	family, ok := a.store.FindByAdminEmail(request.Email)
	if !ok {
		return response_models.SessionResponse{}, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(family.PasswordHash, request.Password); err != nil {
		return response_models.SessionResponse{}, utils.ErrInvalidCredentials
	}

	return a.sessionFor(domain.ModeAdmin, family)
}

// CreateFamily registers a fresh family with one auto-named household and
// returns an admin session bound to it. The desired code must not collide
// with any existing family's code.
func (a *AuthService) CreateFamily(request request_models.CreateFamilyRequest) (response_models.SessionResponse, error) {
	code := strings.ToUpper(strings.TrimSpace(request.Code))

	if _, taken := a.store.FindByCode(code); taken {
		return response_models.SessionResponse{}, utils.ErrCodeTaken
	}

	hash, err := utils.HashPassword(request.Password)
	if err != nil {
		return response_models.SessionResponse{}, err
	}

	family := domain.Family{
		ID:           "fam_" + uuid.New().String(),
		Name:         request.Name,
		Code:         code,
		AdminEmail:   request.Email,
		PasswordHash: hash,
		Households:   []string{request.Name + " Household"},
		Members:      []domain.Member{},
		IsPremium:    false,
	}
	a.store.AddFamily(family)

	return a.sessionFor(domain.ModeAdmin, family)
}

// Logout discards the session's family edits. This is the demo boundary:
// nothing is saved back, a created family disappears entirely.
func (a *AuthService) Logout(session domain.Session) {
	log.Printf("logout family=%s mode=%s, discarding in-memory edits", session.FamilyID, session.Mode)
	a.store.Discard(session.FamilyID)
}

func (a *AuthService) sessionFor(mode domain.Mode, family domain.Family) (response_models.SessionResponse, error) {
	token, err := utils.CreateSessionToken(domain.Session{Mode: mode, FamilyID: family.ID})
	if err != nil {
		return response_models.SessionResponse{}, err
	}

	return response_models.SessionResponse{
		Token:      token,
		Mode:       string(mode),
		FamilyID:   family.ID,
		FamilyName: family.Name,
	}, nil
}
