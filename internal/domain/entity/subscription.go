package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubscriptionPlan representa un plan de suscripción ofrecido a las empresas.
type SubscriptionPlan struct {
	ID           string
	Name         string
	Price        decimal.Decimal
	DurationDays int
	Features     []string
}

// Subscription representa la suscripción vigente de una empresa.
// En el flujo de renovación se selecciona exactamente un plan a la vez.
type Subscription struct {
	ID        string
	CompanyID string
	PlanID    string
	PlanName  string // resuelto por join, solo para presentación
	StartsAt  time.Time
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired indica si la suscripción venció respecto a now.
func (s *Subscription) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
