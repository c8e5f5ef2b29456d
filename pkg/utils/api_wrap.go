package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	id, _ := c.Get("trace_id")
	s, _ := id.(string)
	return s
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidCode):
		RespondError(c, http.StatusUnauthorized, "Invalid family code")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, ErrCodeTaken):
		RespondError(c, http.StatusConflict, "That code is already taken")
	case errors.Is(err, ErrFamilyNotFound):
		RespondError(c, http.StatusNotFound, "Family not found")
	case errors.Is(err, ErrHouseholdRequired):
		RespondError(c, http.StatusBadRequest, "Household is required")
	case errors.Is(err, ErrDuplicateHousehold):
		RespondError(c, http.StatusBadRequest, "Household names must be unique")
	case errors.Is(err, ErrMemberLimitReached):
		RespondError(c, http.StatusPaymentRequired, "Free plan supports up to 5 members. Upgrade to add more.")
	case errors.Is(err, ErrUnknownReaction):
		RespondError(c, http.StatusBadRequest, "Unknown reaction label")
	case errors.Is(err, ErrCheckoutNotFound):
		RespondError(c, http.StatusNotFound, "Checkout not found")
	case errors.Is(err, ErrPaymentDeclined):
		RespondError(c, http.StatusPaymentRequired, "Payment declined, please retry")
	case errors.Is(err, ErrMailNotConfigured):
		RespondError(c, http.StatusServiceUnavailable, "Mail is not configured")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
