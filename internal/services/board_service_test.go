package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whatsup/internal/models/domain"
	"whatsup/internal/store"
	"whatsup/pkg/utils"
)

func TestBuildViewPartitionsHouseholds(t *testing.T) {
	svc := NewBoardService(newFixtureStore())

	view, err := svc.BuildView("fam_fix")
	require.NoError(t, err)

	require.Len(t, view.Households, 2)

	a := view.Households[0]
	assert.Equal(t, "A", a.Name)
	assert.Equal(t, 2, a.MemberCount)
	require.Len(t, a.Ungrouped, 1)
	assert.Equal(t, "m1", a.Ungrouped[0].ID)
	require.Len(t, a.SubGroups, 1)
	assert.Equal(t, "X", a.SubGroups[0].Name)
	require.Len(t, a.SubGroups[0].Members, 1)
	assert.Equal(t, "m2", a.SubGroups[0].Members[0].ID)

	b := view.Households[1]
	assert.Equal(t, "B", b.Name)
	require.Len(t, b.Ungrouped, 1)
	assert.Empty(t, b.SubGroups)
}

func TestBuildViewOrderFollowsHouseholdList(t *testing.T) {
	family := fixtureFamily()
	// Reverse the member list; household order must not change.
	for i, j := 0, len(family.Members)-1; i < j; i, j = i+1, j-1 {
		family.Members[i], family.Members[j] = family.Members[j], family.Members[i]
	}
	s := store.NewFamilyStore(family)
	svc := NewBoardService(s)

	view, err := svc.BuildView("fam_fix")
	require.NoError(t, err)

	names := []string{view.Households[0].Name, view.Households[1].Name}
	assert.Equal(t, []string{"A", "B"}, names)
}

func TestBuildViewSubGroupsInFirstSeenOrder(t *testing.T) {
	family := domain.Family{
		ID: "fam_sg", Name: "SG", Code: "SG",
		Households: []string{"H"},
		Members: []domain.Member{
			{ID: "m1", Household: "H", SubGroup: "Zeta"},
			{ID: "m2", Household: "H", SubGroup: "Alpha"},
			{ID: "m3", Household: "H", SubGroup: "Zeta"},
		},
	}
	svc := NewBoardService(store.NewFamilyStore(family))

	view, err := svc.BuildView("fam_sg")
	require.NoError(t, err)

	groups := view.Households[0].SubGroups
	require.Len(t, groups, 2)
	assert.Equal(t, "Zeta", groups[0].Name)
	assert.Len(t, groups[0].Members, 2)
	assert.Equal(t, "Alpha", groups[1].Name)
}

func TestBuildViewEmptyHouseholdStillRenders(t *testing.T) {
	family := fixtureFamily()
	family.Households = append(family.Households, "Empty House")
	svc := NewBoardService(store.NewFamilyStore(family))

	view, err := svc.BuildView("fam_fix")
	require.NoError(t, err)

	require.Len(t, view.Households, 3)
	empty := view.Households[2]
	assert.Equal(t, "Empty House", empty.Name)
	assert.Zero(t, empty.MemberCount)
	assert.Empty(t, empty.Ungrouped)
	assert.Empty(t, empty.SubGroups)
}

func TestBuildViewSurfacesUnassignedMembers(t *testing.T) {
	family := fixtureFamily()
	family.Members = append(family.Members, domain.Member{ID: "m9", Name: "Lost", Household: "Nowhere"})
	svc := NewBoardService(store.NewFamilyStore(family))

	view, err := svc.BuildView("fam_fix")
	require.NoError(t, err)

	require.Len(t, view.Unassigned, 1)
	assert.Equal(t, "m9", view.Unassigned[0].ID)
	for _, h := range view.Households {
		for _, m := range h.Ungrouped {
			assert.NotEqual(t, "m9", m.ID)
		}
	}
}

func TestBuildViewCollapseFlag(t *testing.T) {
	s := newFixtureStore()
	svc := NewBoardService(s)

	view, err := svc.BuildView("fam_fix")
	require.NoError(t, err)
	assert.False(t, view.Households[0].Collapsed)

	collapsed, err := svc.ToggleCollapse("fam_fix", "A")
	require.NoError(t, err)
	assert.True(t, collapsed)

	view, err = svc.BuildView("fam_fix")
	require.NoError(t, err)
	assert.True(t, view.Households[0].Collapsed)
	assert.False(t, view.Households[1].Collapsed)
}

func TestBuildViewUnknownFamily(t *testing.T) {
	svc := NewBoardService(newFixtureStore())

	_, err := svc.BuildView("fam_missing")
	assert.ErrorIs(t, err, utils.ErrFamilyNotFound)
}
