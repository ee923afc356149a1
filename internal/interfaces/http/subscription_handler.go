package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/opencomercio/gestion-api/internal/application/dto"
	"github.com/opencomercio/gestion-api/internal/application/usecase"
)

// SubscriptionHandler maneja planes y renovación de suscripción.
type SubscriptionHandler struct {
	uc *usecase.SubscriptionUseCase
}

// NewSubscriptionHandler construye el handler.
func NewSubscriptionHandler(uc *usecase.SubscriptionUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{uc: uc}
}

// Plans GET /api/plans
func (h *SubscriptionHandler) Plans(c *fiber.Ctx) error {
	plans, err := h.uc.Plans(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(plans)
}

// Current GET /api/subscription
func (h *SubscriptionHandler) Current(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	sub, err := h.uc.Current(c.Context(), companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sub)
}

// Renew POST /api/subscription/renew?confirm=true
// Se selecciona exactamente un plan; la vigencia se extiende duration_days desde hoy.
func (h *SubscriptionHandler) Renew(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	var in dto.RenewRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sub, err := h.uc.Renew(c.Context(), companyID, in.PlanID, confirmed(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sub)
}
