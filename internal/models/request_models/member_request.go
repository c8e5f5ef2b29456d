package request_models

// UpdateEntry is one highlight row from the editor form. Rows with blank
// text are dropped before saving.
type UpdateEntry struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// SaveMemberRequest is the editor form. An empty ID means a new member.
type SaveMemberRequest struct {
	ID        string        `json:"id"`
	Name      string        `json:"name" binding:"required"`
	PhotoURL  string        `json:"photo_url"`
	Household string        `json:"household" binding:"required"`
	SubGroup  string        `json:"sub_group"`
	Greeting  string        `json:"greeting"`
	Updates   []UpdateEntry `json:"updates"`
}

type ReactRequest struct {
	Label string `json:"label" binding:"required"`
}

// CommentRequest deliberately has no required binding: blank text is a
// silent no-op, not a validation error.
type CommentRequest struct {
	Text string `json:"text"`
}
