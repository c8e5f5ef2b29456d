package response_models

type CheckoutResponse struct {
	OrderCode   int64  `json:"order_code"`
	AmountMinor int64  `json:"amount_minor"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
	Status      string `json:"status"`
}
