package request_models

type UpdateHouseholdsRequest struct {
	Households []string `json:"households" binding:"required"`
}

type InviteRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ToggleCollapseRequest struct {
	Household string `json:"household" binding:"required"`
}
