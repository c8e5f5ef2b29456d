package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whatsup/internal/models/domain"
	"whatsup/internal/models/request_models"
	"whatsup/internal/store"
	"whatsup/pkg/utils"
)

func TestReactCountsEveryCall(t *testing.T) {
	s := newFixtureStore()
	svc := NewMemberService(s)

	for i := 0; i < 7; i++ {
		applied, err := svc.React("fam_fix", "m1", "❤️")
		require.NoError(t, err)
		assert.True(t, applied)
	}
	applied, err := svc.React("fam_fix", "m1", "🎄")
	require.NoError(t, err)
	assert.True(t, applied)

	family, _ := s.GetFamily("fam_fix")
	member := family.MemberByID("m1")
	assert.Equal(t, 7, member.Reactions["❤️"])
	assert.Equal(t, 1, member.Reactions["🎄"])
}

func TestReactUnknownMemberIsNoOp(t *testing.T) {
	s := newFixtureStore()
	svc := NewMemberService(s)

	applied, err := svc.React("fam_fix", "ghost", "❤️")
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestReactRejectsUnknownLabel(t *testing.T) {
	svc := NewMemberService(newFixtureStore())

	_, err := svc.React("fam_fix", "m1", "🦃")
	assert.ErrorIs(t, err, utils.ErrUnknownReaction)
}

func TestCommentWhitespaceIsNoOp(t *testing.T) {
	s := newFixtureStore()
	svc := NewMemberService(s)

	for _, text := range []string{"", "   ", "\t\n"} {
		applied, err := svc.Comment("fam_fix", "m1", "Guest", text)
		require.NoError(t, err)
		assert.False(t, applied)
	}

	family, _ := s.GetFamily("fam_fix")
	assert.Empty(t, family.MemberByID("m1").Comments)
}

func TestCommentAppendsInOrder(t *testing.T) {
	s := newFixtureStore()
	svc := NewMemberService(s)

	_, err := svc.Comment("fam_fix", "m1", "Guest", "first")
	require.NoError(t, err)
	_, err = svc.Comment("fam_fix", "m1", "Admin", "second")
	require.NoError(t, err)

	family, _ := s.GetFamily("fam_fix")
	comments := family.MemberByID("m1").Comments
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Text)
	assert.Equal(t, "Guest", comments[0].Author)
	assert.Equal(t, "second", comments[1].Text)
	assert.Equal(t, "Admin", comments[1].Author)
	assert.NotEqual(t, comments[0].ID, comments[1].ID)
}

func TestCommentUnknownMemberIsNoOp(t *testing.T) {
	svc := NewMemberService(newFixtureStore())

	applied, err := svc.Comment("fam_fix", "ghost", "Guest", "hello")
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestSaveMemberCreatesWithFreshID(t *testing.T) {
	s := newFixtureStore()
	svc := NewMemberService(s)

	member, err := svc.SaveMember("fam_fix", request_models.SaveMemberRequest{
		Name:      "Newbie",
		Household: "A",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, member.ID)
	assert.Equal(t, utils.DefaultMemberPhotoURL, member.PhotoURL)
	assert.Empty(t, member.Updates)
	assert.Empty(t, member.Reactions)
	assert.Empty(t, member.Comments)

	family, _ := s.GetFamily("fam_fix")
	assert.Len(t, family.Members, 4)
}

func TestSaveMemberUpsertKeepsPosition(t *testing.T) {
	s := newFixtureStore()
	svc := NewMemberService(s)

	_, err := svc.SaveMember("fam_fix", request_models.SaveMemberRequest{
		ID:        "m2",
		Name:      "Two Renamed",
		Household: "A",
		SubGroup:  "X",
	})
	require.NoError(t, err)

	family, _ := s.GetFamily("fam_fix")
	require.Len(t, family.Members, 3)
	assert.Equal(t, "m2", family.Members[1].ID)
	assert.Equal(t, "Two Renamed", family.Members[1].Name)
}

func TestSaveMemberIsIdempotent(t *testing.T) {
	s := newFixtureStore()
	svc := NewMemberService(s)

	form := request_models.SaveMemberRequest{
		ID:        "m1",
		Name:      "One",
		Household: "A",
		Updates:   []request_models.UpdateEntry{{Category: "Work", Text: "same"}},
	}

	first, err := svc.SaveMember("fam_fix", form)
	require.NoError(t, err)
	second, err := svc.SaveMember("fam_fix", form)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	family, _ := s.GetFamily("fam_fix")
	assert.Len(t, family.Members, 3)
}

func TestSaveMemberEditCarriesReactionsAndComments(t *testing.T) {
	s := newFixtureStore()
	svc := NewMemberService(s)

	_, err := svc.React("fam_fix", "m1", "🍪")
	require.NoError(t, err)
	_, err = svc.Comment("fam_fix", "m1", "Guest", "nice card")
	require.NoError(t, err)

	member, err := svc.SaveMember("fam_fix", request_models.SaveMemberRequest{
		ID:        "m1",
		Name:      "One Edited",
		Household: "A",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, member.Reactions["🍪"])
	require.Len(t, member.Comments, 1)
	assert.Equal(t, "nice card", member.Comments[0].Text)
}

func TestSaveMemberFiltersBlankUpdates(t *testing.T) {
	svc := NewMemberService(newFixtureStore())

	member, err := svc.SaveMember("fam_fix", request_models.SaveMemberRequest{
		Name:      "Filtered",
		Household: "B",
		Updates: []request_models.UpdateEntry{
			{Category: "Travel", Text: "Went somewhere"},
			{Category: "Work", Text: "   "},
			{Text: "kept with default category"},
		},
	})
	require.NoError(t, err)
	require.Len(t, member.Updates, 2)
	assert.Equal(t, "Travel", member.Updates[0].Category)
	assert.Equal(t, "Work", member.Updates[1].Category)
}

func TestSaveMemberTrimsSubGroup(t *testing.T) {
	svc := NewMemberService(newFixtureStore())

	member, err := svc.SaveMember("fam_fix", request_models.SaveMemberRequest{
		Name:      "Spacey",
		Household: "A",
		SubGroup:  "   ",
	})
	require.NoError(t, err)
	assert.Empty(t, member.SubGroup)
}

func TestEntitlementGate(t *testing.T) {
	cases := []struct {
		count   int
		premium bool
		allowed bool
	}{
		{4, false, true},
		{5, false, false},
		{6, false, false},
		{5, true, true},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("count=%d premium=%v", tc.count, tc.premium), func(t *testing.T) {
			family := domain.Family{ID: "fam_gate", Name: "Gate", Code: "GATE", Households: []string{"H"}, IsPremium: tc.premium}
			for i := 0; i < tc.count; i++ {
				family.Members = append(family.Members, domain.Member{
					ID: fmt.Sprintf("m%d", i), Name: "M", Household: "H",
				})
			}
			s := store.NewFamilyStore(family)
			svc := NewMemberService(s)

			allowed, err := svc.CanAddMember("fam_gate")
			require.NoError(t, err)
			assert.Equal(t, tc.allowed, allowed)

			_, err = svc.SaveMember("fam_gate", request_models.SaveMemberRequest{Name: "Extra", Household: "H"})
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, utils.ErrMemberLimitReached)
			}
		})
	}
}

func TestSaveMemberEditAllowedAtLimit(t *testing.T) {
	family := domain.Family{ID: "fam_full", Name: "Full", Code: "FULL", Households: []string{"H"}}
	for i := 0; i < domain.FreeTierMemberLimit; i++ {
		family.Members = append(family.Members, domain.Member{ID: fmt.Sprintf("m%d", i), Name: "M", Household: "H"})
	}
	s := store.NewFamilyStore(family)
	svc := NewMemberService(s)

	_, err := svc.SaveMember("fam_full", request_models.SaveMemberRequest{ID: "m0", Name: "Edited", Household: "H"})
	assert.NoError(t, err)
}
