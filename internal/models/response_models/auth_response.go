package response_models

type SessionResponse struct {
	Token      string `json:"token"`
	Mode       string `json:"mode"`
	FamilyID   string `json:"family_id"`
	FamilyName string `json:"family_name"`
}

type ShareResponse struct {
	Code       string `json:"code"`
	FamilyName string `json:"family_name"`
	InviteText string `json:"invite_text"`
}
