package models

import "time"

// Payment records an external payment-gateway transaction. GatewayID is
// issued by the gateway and acts as the idempotency key for webhook
// re-delivery. Status moves PENDING -> COMPLETED or PENDING -> FAILED,
// driven by the gateway callback.
type Payment struct {
	BaseModel
	UserID      string        `gorm:"type:uuid;not null;index"`
	GatewayID   string        `gorm:"uniqueIndex;not null"`
	Amount      float64       `gorm:"not null"`
	Currency    string        `gorm:"default:'INR'"`
	Status      PaymentStatus `gorm:"type:varchar(20);default:'PENDING'"`
	TokensAdded int           `gorm:"not null"`
	SettledAt   *time.Time
}
