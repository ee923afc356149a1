package dto

import "github.com/shopspring/decimal"

// PlanResponse plan de suscripción disponible.
type PlanResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	PriceFormatted string          `json:"price_formatted"`
	DurationDays   int             `json:"duration_days"`
	Features       []string        `json:"features"`
}

// RenewRequest renovación: se selecciona exactamente un plan.
type RenewRequest struct {
	PlanID string `json:"plan_id"`
}

// SubscriptionResponse suscripción vigente de la empresa.
type SubscriptionResponse struct {
	PlanID    string `json:"plan_id"`
	PlanName  string `json:"plan_name"`
	StartsAt  string `json:"starts_at"`
	ExpiresAt string `json:"expires_at"`
	Expired   bool   `json:"expired"`
}
