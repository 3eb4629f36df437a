package validator

import (
	"log"

	"careerpilot_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules adds the enum rules derived from models/statuses.go.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-demand-level", validateDemandLevel)
	mustRegister("is-market-outlook", validateMarketOutlook)
	mustRegister("is-payment-status", validatePaymentStatus)
}

func validateDemandLevel(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' covers empties
	}
	return models.DemandLevel(value).IsValid()
}

func validateMarketOutlook(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.MarketOutlook(value).IsValid()
}

func validatePaymentStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.PaymentStatus(value).IsValid()
}
