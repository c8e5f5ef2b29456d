package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"whatsup/internal/models/request_models"
	"whatsup/internal/services"
	"whatsup/pkg/middleware"
	"whatsup/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
}

func NewAuthController(authService services.AuthServiceInterface) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Join godoc
// @Summary Join a family board as a guest
// @Description Exchange a family code for a guest session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.JoinRequest true "Join payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/join [post]
func (a *AuthController) Join(c *gin.Context) {
	var req request_models.JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session, err := a.authService.Join(req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Welcome!")
}

// AdminLogin godoc
// @Summary Login as the family admin
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.AdminLoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AuthController) AdminLogin(c *gin.Context) {
	var req request_models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session, err := a.authService.AdminLogin(req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Login successful")
}

// CreateFamily godoc
// @Summary Create a new family board
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.CreateFamilyRequest true "Create payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /auth/create [post]
func (a *AuthController) CreateFamily(c *gin.Context) {
	var req request_models.CreateFamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session, err := a.authService.CreateFamily(req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Family created")
}

// Logout discards the session's in-memory edits. Nothing is saved back.
func (a *AuthController) Logout(c *gin.Context) {
	session := middleware.SessionFrom(c)
	a.authService.Logout(session)
	utils.RespondSuccess(c, nil, "Logged out")
}
