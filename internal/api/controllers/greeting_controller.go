package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"whatsup/internal/models/request_models"
	"whatsup/internal/models/response_models"
	"whatsup/internal/services"
	"whatsup/pkg/utils"
)

type GreetingController struct {
	greetingService services.GreetingServiceInterface
}

func NewGreetingController(greetingService services.GreetingServiceInterface) *GreetingController {
	return &GreetingController{
		greetingService: greetingService,
	}
}

// GenerateGreeting godoc
// @Summary Generate an AI holiday greeting for a member
// @Description Always succeeds: collaborator failures resolve to a fixed fallback greeting
// @Tags Greetings
// @Accept json
// @Produce json
// @Param request body request_models.GreetingRequest true "Greeting payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /greetings/generate [post]
func (g *GreetingController) GenerateGreeting(c *gin.Context) {
	var req request_models.GreetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	greeting := g.greetingService.GenerateGreeting(c.Request.Context(), req)
	utils.RespondSuccess(c, response_models.GreetingResponse{Greeting: greeting}, "")
}

// GeneratePortrait renders a festive portrait; failures fall back to a
// seeded placeholder image URL.
func (g *GreetingController) GeneratePortrait(c *gin.Context) {
	var req request_models.PortraitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	url := g.greetingService.GeneratePortrait(c.Request.Context(), req.Prompt)
	utils.RespondSuccess(c, response_models.PortraitResponse{PhotoURL: url}, "")
}
