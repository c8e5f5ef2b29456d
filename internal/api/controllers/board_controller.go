package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"whatsup/internal/models/request_models"
	"whatsup/internal/services"
	"whatsup/pkg/middleware"
	"whatsup/pkg/utils"
)

type BoardController struct {
	boardService services.BoardServiceInterface
}

func NewBoardController(boardService services.BoardServiceInterface) *BoardController {
	return &BoardController{
		boardService: boardService,
	}
}

// GetBoard godoc
// @Summary Get the rendered household hierarchy
// @Tags Board
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /board [get]
func (b *BoardController) GetBoard(c *gin.Context) {
	session := middleware.SessionFrom(c)

	view, err := b.boardService.BuildView(session.FamilyID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, view, "Board fetched successfully")
}

// ToggleCollapse flips one household section open or closed for this family.
func (b *BoardController) ToggleCollapse(c *gin.Context) {
	var req request_models.ToggleCollapseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session := middleware.SessionFrom(c)
	collapsed, err := b.boardService.ToggleCollapse(session.FamilyID, req.Household)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"household": req.Household, "collapsed": collapsed}, "Toggled")
}
