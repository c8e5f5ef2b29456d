package request_models

type ConfirmPaymentRequest struct {
	OrderCode int64 `json:"order_code" binding:"required"`
}
