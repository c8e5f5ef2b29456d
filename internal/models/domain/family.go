package domain

// Family is the aggregate root: one invite code, one ordered household
// list, one member list. It lives in memory only; every mutation builds a
// full next-state copy and swaps it into the store.
type Family struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Code         string   `json:"code"`
	AdminEmail   string   `json:"admin_email,omitempty"`
	PasswordHash string   `json:"-"`
	Households   []string `json:"households"`
	Members      []Member `json:"members"`
	IsPremium    bool     `json:"is_premium"`
}

// FreeTierMemberLimit is the member count a non-premium family may reach
// before new members require an upgrade.
const FreeTierMemberLimit = 5

// Clone returns a deep copy of the family. Services mutate the copy and
// swap it back; the stored aggregate is never written through.
func (f Family) Clone() Family {
	next := f
	next.Households = append([]string(nil), f.Households...)
	next.Members = make([]Member, len(f.Members))
	for i, m := range f.Members {
		next.Members[i] = m.Clone()
	}
	return next
}

// MemberByID returns the member with the given id, or nil.
func (f *Family) MemberByID(id string) *Member {
	for i := range f.Members {
		if f.Members[i].ID == id {
			return &f.Members[i]
		}
	}
	return nil
}

// HasHousehold reports whether name appears in the ordered household list.
func (f *Family) HasHousehold(name string) bool {
	for _, h := range f.Households {
		if h == name {
			return true
		}
	}
	return false
}
