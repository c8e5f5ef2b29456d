package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whatsup/internal/models/domain"
	"whatsup/internal/models/request_models"
	"whatsup/internal/store"
	"whatsup/pkg/utils"
)

func newAuthFixture(t *testing.T) (*store.FamilyStore, AuthServiceInterface) {
	t.Helper()
	s := store.NewFamilyStore(store.SeedFamily())
	return s, NewAuthService(s)
}

func TestJoinIsCaseInsensitive(t *testing.T) {
	_, auth := newAuthFixture(t)

	session, err := auth.Join(request_models.JoinRequest{Code: "kevin"})
	require.NoError(t, err)
	assert.Equal(t, string(domain.ModeGuest), session.Mode)
	assert.Equal(t, store.DemoFamilyID, session.FamilyID)
	assert.NotEmpty(t, session.Token)
}

func TestJoinInvalidCode(t *testing.T) {
	_, auth := newAuthFixture(t)

	_, err := auth.Join(request_models.JoinRequest{Code: "MARV"})
	assert.ErrorIs(t, err, utils.ErrInvalidCode)
}

func TestAdminLogin(t *testing.T) {
	_, auth := newAuthFixture(t)

	session, err := auth.AdminLogin(request_models.AdminLoginRequest{
		Email:    store.DemoAdminEmail,
		Password: "password",
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.ModeAdmin), session.Mode)
}

func TestAdminLoginWrongPassword(t *testing.T) {
	_, auth := newAuthFixture(t)

	_, err := auth.AdminLogin(request_models.AdminLoginRequest{
		Email:    store.DemoAdminEmail,
		Password: "hunter2",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestAdminLoginUnknownEmail(t *testing.T) {
	_, auth := newAuthFixture(t)

	_, err := auth.AdminLogin(request_models.AdminLoginRequest{
		Email:    "harry@wetbandits.com",
		Password: "password",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestCreateFamily(t *testing.T) {
	s, auth := newAuthFixture(t)

	session, err := auth.CreateFamily(request_models.CreateFamilyRequest{
		Name:     "The Smiths",
		Code:     "smith25",
		Email:    "jane@smith.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.ModeAdmin), session.Mode)

	family, ok := s.GetFamily(session.FamilyID)
	require.True(t, ok)
	assert.Equal(t, "SMITH25", family.Code)
	assert.Equal(t, []string{"The Smiths Household"}, family.Households)
	assert.Empty(t, family.Members)
	assert.False(t, family.IsPremium)
}

func TestCreateFamilyCodeTaken(t *testing.T) {
	_, auth := newAuthFixture(t)

	_, err := auth.CreateFamily(request_models.CreateFamilyRequest{
		Name:     "Impostors",
		Code:     "Kevin",
		Email:    "x@y.com",
		Password: "pw",
	})
	assert.ErrorIs(t, err, utils.ErrCodeTaken)
}

func TestLogoutDiscardsEdits(t *testing.T) {
	s, auth := newAuthFixture(t)

	family, _ := s.GetFamily(store.DemoFamilyID)
	family.Members[0].Greeting = "edited"
	s.ReplaceFamily(family)

	auth.Logout(domain.Session{Mode: domain.ModeAdmin, FamilyID: store.DemoFamilyID})

	restored, ok := s.GetFamily(store.DemoFamilyID)
	require.True(t, ok)
	assert.NotEqual(t, "edited", restored.Members[0].Greeting)
}

func TestLogoutDropsCreatedFamily(t *testing.T) {
	s, auth := newAuthFixture(t)

	session, err := auth.CreateFamily(request_models.CreateFamilyRequest{
		Name:     "Ephemeral",
		Code:     "GONE",
		Email:    "a@b.com",
		Password: "pw",
	})
	require.NoError(t, err)

	auth.Logout(domain.Session{Mode: domain.ModeAdmin, FamilyID: session.FamilyID})

	_, ok := s.GetFamily(session.FamilyID)
	assert.False(t, ok)
}
