package dto

import "time"

type DebitTokensRequest struct {
	Amount      int    `json:"amount" binding:"required" validate:"required,gt=0"`
	Description string `json:"description" binding:"required" validate:"required,max=255"`
	FeatureType string `json:"feature_type" validate:"max=100"`
}

type CreditTokensRequest struct {
	Amount      int    `json:"amount" binding:"required" validate:"required,gt=0"`
	Description string `json:"description" binding:"required" validate:"required,max=255"`
}

type TokenTransactionResponse struct {
	ID          string    `json:"id"`
	Amount      int       `json:"amount"`
	Description string    `json:"description"`
	FeatureType string    `json:"feature_type,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type BalanceResponse struct {
	Tokens     int  `json:"tokens"`
	Reconciled bool `json:"reconciled"`
}

type LedgerResponse struct {
	Transactions []TokenTransactionResponse `json:"transactions"`
	Total        int64                      `json:"total"`
}
