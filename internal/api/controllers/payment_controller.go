package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"whatsup/internal/models/request_models"
	"whatsup/internal/services"
	"whatsup/pkg/middleware"
	"whatsup/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentServiceInterface
}

func NewPaymentController(paymentService services.PaymentServiceInterface) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// CreateCheckout godoc
// @Summary Open a premium-upgrade checkout
// @Tags Payments
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/checkout [post]
func (p *PaymentController) CreateCheckout(c *gin.Context) {
	session := middleware.SessionFrom(c)

	checkout, err := p.paymentService.CreateCheckout(c.Request.Context(), session.FamilyID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, checkout, "Checkout created")
}

// ConfirmCheckout settles a pending checkout; on success the family is
// premium and the member cap is lifted.
func (p *PaymentController) ConfirmCheckout(c *gin.Context) {
	var req request_models.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session := middleware.SessionFrom(c)
	checkout, err := p.paymentService.ConfirmCheckout(c.Request.Context(), session.FamilyID, req.OrderCode)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, checkout, "Welcome to Premium!")
}
