package domain

// Mode is the viewer's role for the active session.
type Mode string

const (
	ModeNone  Mode = "NONE"
	ModeGuest Mode = "GUEST"
	ModeAdmin Mode = "ADMIN"
)

// Session binds a role to a family. It is ephemeral: carried in a signed
// token between requests, never persisted.
type Session struct {
	Mode     Mode   `json:"mode"`
	FamilyID string `json:"family_id"`
}

// AuthorLabel is the display name attached to comments written under this
// session's role.
func (s Session) AuthorLabel() string {
	if s.Mode == ModeAdmin {
		return "Admin"
	}
	return "Guest"
}
