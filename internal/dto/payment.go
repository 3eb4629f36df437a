package dto

import "time"

type RecordPaymentRequest struct {
	GatewayID   string  `json:"gateway_id" binding:"required" validate:"required,max=255"`
	Amount      float64 `json:"amount" binding:"required" validate:"required,gt=0"`
	Currency    string  `json:"currency" validate:"omitempty,len=3"`
	TokensAdded int     `json:"tokens_added" binding:"required" validate:"required,gt=0"`
}

// PaymentWebhookRequest is the gateway callback payload. Signature is an
// HMAC-SHA256 over "gateway_id|status|amount".
type PaymentWebhookRequest struct {
	GatewayID string  `json:"gateway_id" binding:"required" validate:"required"`
	Status    string  `json:"status" binding:"required" validate:"required,is-payment-status"`
	Amount    float64 `json:"amount" binding:"required" validate:"required,gt=0"`
	Signature string  `json:"signature" binding:"required" validate:"required"`
}

type PaymentResponse struct {
	ID          string     `json:"id"`
	GatewayID   string     `json:"gateway_id"`
	Amount      float64    `json:"amount"`
	Currency    string     `json:"currency"`
	Status      string     `json:"status"`
	TokensAdded int        `json:"tokens_added"`
	SettledAt   *time.Time `json:"settled_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
