package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"whatsup/internal/models/request_models"
	"whatsup/internal/services"
	"whatsup/pkg/middleware"
	"whatsup/pkg/utils"
)

type MemberController struct {
	memberService services.MemberServiceInterface
}

func NewMemberController(memberService services.MemberServiceInterface) *MemberController {
	return &MemberController{
		memberService: memberService,
	}
}

// CanAdd godoc
// @Summary Check whether the family can add another member
// @Description Blocked means the caller should be routed to the premium upgrade flow
// @Tags Members
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /members/can-add [get]
func (m *MemberController) CanAdd(c *gin.Context) {
	session := middleware.SessionFrom(c)

	allowed, err := m.memberService.CanAddMember(session.FamilyID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"allowed": allowed}, "")
}

// SaveMember godoc
// @Summary Create or update a member card
// @Description Upsert by id: an existing id is replaced in place, a fresh one appends
// @Tags Members
// @Accept json
// @Produce json
// @Param request body request_models.SaveMemberRequest true "Editor form"
// @Success 200 {object} utils.APIResponse
// @Failure 402 {object} utils.APIResponse
// @Security BearerAuth
// @Router /members [post]
func (m *MemberController) SaveMember(c *gin.Context) {
	var req request_models.SaveMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session := middleware.SessionFrom(c)
	member, err := m.memberService.SaveMember(session.FamilyID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, member, "Member saved")
}

// React bumps one emoji counter on a member card. Reacting to an id that
// no longer exists is answered with applied=false rather than an error.
func (m *MemberController) React(c *gin.Context) {
	var req request_models.ReactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session := middleware.SessionFrom(c)
	applied, err := m.memberService.React(session.FamilyID, c.Param("id"), req.Label)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"applied": applied}, "")
}

// Comment appends a comment to a member card under the session's author
// label.
func (m *MemberController) Comment(c *gin.Context) {
	var req request_models.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session := middleware.SessionFrom(c)
	applied, err := m.memberService.Comment(session.FamilyID, c.Param("id"), session.AuthorLabel(), req.Text)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"applied": applied}, "")
}
