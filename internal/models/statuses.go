package models

type DemandLevel string
type MarketOutlook string
type PaymentStatus string

const (
	DemandLevelHigh   DemandLevel = "HIGH"
	DemandLevelMedium DemandLevel = "MEDIUM"
	DemandLevelLow    DemandLevel = "LOW"

	MarketOutlookPositive MarketOutlook = "POSITIVE"
	MarketOutlookNeutral  MarketOutlook = "NEUTRAL"
	MarketOutlookNegative MarketOutlook = "NEGATIVE"

	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

func (d DemandLevel) IsValid() bool {
	switch d {
	case DemandLevelHigh, DemandLevelMedium, DemandLevelLow:
		return true
	}
	return false
}

func (m MarketOutlook) IsValid() bool {
	switch m {
	case MarketOutlookPositive, MarketOutlookNeutral, MarketOutlookNegative:
		return true
	}
	return false
}

func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed:
		return true
	}
	return false
}

// IsFinal reports whether a payment status can no longer change.
func (p PaymentStatus) IsFinal() bool {
	return p == PaymentStatusCompleted || p == PaymentStatusFailed
}
