package repository

import (
	"context"

	"github.com/opencomercio/gestion-api/internal/domain/entity"
)

// SubscriptionRepository puerto de persistencia para planes y suscripciones.
type SubscriptionRepository interface {
	ListPlans(ctx context.Context) ([]*entity.SubscriptionPlan, error) // orden por precio ascendente
	GetPlanByID(ctx context.Context, id string) (*entity.SubscriptionPlan, error)
	GetByCompany(ctx context.Context, companyID string) (*entity.Subscription, error) // (nil, nil) si nunca ha suscrito
	Save(ctx context.Context, sub *entity.Subscription) error                         // inserta o reemplaza la vigente
}
