package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/opencomercio/gestion-api/internal/application/dto"
	"github.com/opencomercio/gestion-api/internal/application/listview"
	"github.com/opencomercio/gestion-api/internal/domain"
	"github.com/opencomercio/gestion-api/internal/domain/entity"
	"github.com/opencomercio/gestion-api/internal/domain/repository"
	"github.com/opencomercio/gestion-api/pkg/format"
	"github.com/opencomercio/gestion-api/pkg/logger"
)

// SubscriptionUseCase planes disponibles y flujo de renovación: se selecciona
// exactamente un plan a la vez y la vigencia se extiende duration_days desde hoy.
type SubscriptionUseCase struct {
	subs     repository.SubscriptionRepository
	currency *format.CurrencyFormatter
	log      *logger.Logger
}

// NewSubscriptionUseCase construye el caso de uso.
func NewSubscriptionUseCase(subs repository.SubscriptionRepository, currency *format.CurrencyFormatter, log *logger.Logger) *SubscriptionUseCase {
	return &SubscriptionUseCase{subs: subs, currency: currency, log: log}
}

// Plans lista los planes disponibles con el precio formateado.
func (uc *SubscriptionUseCase) Plans(ctx context.Context) ([]*dto.PlanResponse, error) {
	list, err := uc.subs.ListPlans(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PlanResponse, 0, len(list))
	for _, p := range list {
		out = append(out, &dto.PlanResponse{
			ID:             p.ID,
			Name:           p.Name,
			Price:          p.Price,
			PriceFormatted: uc.currency.Format(p.Price),
			DurationDays:   p.DurationDays,
			Features:       p.Features,
		})
	}
	return out, nil
}

// Current devuelve la suscripción vigente de la empresa, o ErrNotFound si
// nunca se ha suscrito.
func (uc *SubscriptionUseCase) Current(ctx context.Context, companyID string) (*dto.SubscriptionResponse, error) {
	sub, err := uc.subs.GetByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrNotFound
	}
	return toSubscriptionResponse(sub), nil
}

// Renew renueva la suscripción con el plan seleccionado. Requiere
// confirmación; un plan inexistente produce ErrNotFound sin mutación.
func (uc *SubscriptionUseCase) Renew(ctx context.Context, companyID, planID string, confirmed bool) (*dto.SubscriptionResponse, error) {
	if !confirmed {
		return nil, listview.ErrConfirmRequired
	}
	if planID == "" {
		return nil, domain.ErrInvalidInput
	}
	plan, err := uc.subs.GetPlanByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	sub := &entity.Subscription{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		PlanID:    plan.ID,
		PlanName:  plan.Name,
		StartsAt:  now,
		ExpiresAt: now.AddDate(0, 0, plan.DurationDays),
		CreatedAt: now,
	}
	if err := uc.subs.Save(ctx, sub); err != nil {
		return nil, err
	}
	// Relectura tras la mutación, misma disciplina que las vistas de lista.
	saved, err := uc.subs.GetByCompany(ctx, companyID)
	if err != nil || saved == nil {
		if uc.log != nil {
			uc.log.Warn().Err(err).Str("company_id", companyID).
				Msg("relectura de suscripción tras renovar falló, se responde con el estado escrito")
		}
		return toSubscriptionResponse(sub), nil
	}
	return toSubscriptionResponse(saved), nil
}

func toSubscriptionResponse(s *entity.Subscription) *dto.SubscriptionResponse {
	return &dto.SubscriptionResponse{
		PlanID:    s.PlanID,
		PlanName:  s.PlanName,
		StartsAt:  format.LongDate(s.StartsAt),
		ExpiresAt: format.LongDate(s.ExpiresAt),
		Expired:   s.Expired(time.Now()),
	}
}
