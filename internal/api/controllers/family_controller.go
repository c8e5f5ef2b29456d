package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"whatsup/internal/models/request_models"
	"whatsup/internal/services"
	"whatsup/pkg/middleware"
	"whatsup/pkg/utils"
)

type FamilyController struct {
	familyService services.FamilyServiceInterface
}

func NewFamilyController(familyService services.FamilyServiceInterface) *FamilyController {
	return &FamilyController{
		familyService: familyService,
	}
}

// UpdateHouseholds godoc
// @Summary Replace the ordered household list
// @Tags Families
// @Accept json
// @Produce json
// @Param request body request_models.UpdateHouseholdsRequest true "Household settings"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /families/households [put]
func (f *FamilyController) UpdateHouseholds(c *gin.Context) {
	var req request_models.UpdateHouseholdsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session := middleware.SessionFrom(c)
	family, err := f.familyService.UpdateHouseholds(session.FamilyID, req.Households)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"households": family.Households}, "Settings saved")
}

// Share returns the join code and ready-made invite text.
func (f *FamilyController) Share(c *gin.Context) {
	session := middleware.SessionFrom(c)

	share, err := f.familyService.Share(session.FamilyID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, share, "")
}

// Invite emails the join code to one recipient.
func (f *FamilyController) Invite(c *gin.Context) {
	var req request_models.InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session := middleware.SessionFrom(c)
	if err := f.familyService.Invite(session.FamilyID, req.Email); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Invite sent")
}
