package store

import (
	"sync"

	"whatsup/internal/models/domain"
)

// FamilyStore owns the in-memory family graph. All state is lost when the
// process exits and a family's edits are discarded on logout; that is the
// demo boundary, not an accident. Reads hand out deep copies, writes go
// through ReplaceFamily with a full next-state aggregate.
type FamilyStore struct {
	mu        sync.RWMutex
	families  map[string]domain.Family
	seeds     map[string]domain.Family
	collapsed map[string]map[string]bool
}

func NewFamilyStore(seed ...domain.Family) *FamilyStore {
	s := &FamilyStore{
		families:  make(map[string]domain.Family),
		seeds:     make(map[string]domain.Family),
		collapsed: make(map[string]map[string]bool),
	}
	for _, f := range seed {
		s.families[f.ID] = f.Clone()
		s.seeds[f.ID] = f.Clone()
	}
	return s
}

// GetFamily returns a deep copy of the family, or false.
func (s *FamilyStore) GetFamily(id string) (domain.Family, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.families[id]
	if !ok {
		return domain.Family{}, false
	}
	return f.Clone(), true
}

// FindByCode returns the family with the given join code, exact match.
func (s *FamilyStore) FindByCode(code string) (domain.Family, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.families {
		if f.Code == code {
			return f.Clone(), true
		}
	}
	return domain.Family{}, false
}

// FindByAdminEmail returns the family whose admin email matches, exact match.
func (s *FamilyStore) FindByAdminEmail(email string) (domain.Family, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.families {
		if f.AdminEmail != "" && f.AdminEmail == email {
			return f.Clone(), true
		}
	}
	return domain.Family{}, false
}

// AddFamily registers a newly created family.
func (s *FamilyStore) AddFamily(f domain.Family) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.families[f.ID] = f.Clone()
}

// ReplaceFamily swaps in a full next-state aggregate. It is a no-op if the
// family is unknown (e.g. a stale completion after logout).
func (s *FamilyStore) ReplaceFamily(next domain.Family) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.families[next.ID]; !ok {
		return false
	}
	s.families[next.ID] = next.Clone()
	return true
}

// Discard drops a family's in-memory edits on logout. Seeded families are
// restored to their seed state, created families are removed entirely.
func (s *FamilyStore) Discard(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seed, ok := s.seeds[id]; ok {
		s.families[id] = seed.Clone()
	} else {
		delete(s.families, id)
	}
	delete(s.collapsed, id)
}

// Collapsed returns the set of collapsed household names for a family.
// Households absent from the set are expanded.
func (s *FamilyStore) Collapsed(familyID string) map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]bool, len(s.collapsed[familyID]))
	for k, v := range s.collapsed[familyID] {
		out[k] = v
	}
	return out
}

// ToggleCollapse flips the collapse flag for one household. Unknown keys
// start expanded, so the first toggle collapses.
func (s *FamilyStore) ToggleCollapse(familyID, household string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.collapsed[familyID]
	if !ok {
		set = make(map[string]bool)
		s.collapsed[familyID] = set
	}
	set[household] = !set[household]
	return set[household]
}
