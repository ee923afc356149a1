package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/opencomercio/gestion-api/internal/domain/entity"
	"github.com/opencomercio/gestion-api/internal/domain/repository"
)

var _ repository.SubscriptionRepository = (*SubscriptionRepo)(nil)

// SubscriptionRepo planes y suscripción vigente por empresa (usable con pool o tx).
type SubscriptionRepo struct {
	q Querier
}

// NewSubscriptionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSubscriptionRepository(q Querier) *SubscriptionRepo {
	return &SubscriptionRepo{q: q}
}

// ListPlans lista los planes disponibles, más barato primero.
// features es un array de texto en la base.
func (r *SubscriptionRepo) ListPlans(ctx context.Context) ([]*entity.SubscriptionPlan, error) {
	query := `SELECT id, name, price, duration_days, features FROM subscription_plans ORDER BY price`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()
	var list []*entity.SubscriptionPlan
	for rows.Next() {
		var p entity.SubscriptionPlan
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.DurationDays, &p.Features); err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// GetPlanByID obtiene un plan por ID.
func (r *SubscriptionRepo) GetPlanByID(ctx context.Context, id string) (*entity.SubscriptionPlan, error) {
	var p entity.SubscriptionPlan
	err := r.q.QueryRow(ctx,
		`SELECT id, name, price, duration_days, features FROM subscription_plans WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.Price, &p.DurationDays, &p.Features)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return &p, nil
}

// GetByCompany obtiene la suscripción vigente de la empresa con el nombre
// del plan resuelto. (nil, nil) si la empresa nunca ha suscrito.
func (r *SubscriptionRepo) GetByCompany(ctx context.Context, companyID string) (*entity.Subscription, error) {
	query := `
		SELECT s.id, s.company_id, s.plan_id, p.name, s.starts_at, s.expires_at, s.created_at
		FROM subscriptions s
		JOIN subscription_plans p ON p.id = s.plan_id
		WHERE s.company_id = $1`
	var s entity.Subscription
	err := r.q.QueryRow(ctx, query, companyID).Scan(
		&s.ID, &s.CompanyID, &s.PlanID, &s.PlanName, &s.StartsAt, &s.ExpiresAt, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return &s, nil
}

// Save inserta la suscripción o reemplaza la vigente de la empresa
// (una suscripción activa por empresa).
func (r *SubscriptionRepo) Save(ctx context.Context, sub *entity.Subscription) error {
	query := `
		INSERT INTO subscriptions (id, company_id, plan_id, starts_at, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (company_id) DO UPDATE SET
			plan_id = EXCLUDED.plan_id,
			starts_at = EXCLUDED.starts_at,
			expires_at = EXCLUDED.expires_at`
	_, err := r.q.Exec(ctx, query,
		sub.ID, sub.CompanyID, sub.PlanID, sub.StartsAt, sub.ExpiresAt, sub.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save subscription: %w", err)
	}
	return nil
}
