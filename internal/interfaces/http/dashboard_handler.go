package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/opencomercio/gestion-api/internal/application/dto"
	"github.com/opencomercio/gestion-api/internal/application/usecase"
)

// DashboardHandler maneja el resumen del dashboard.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (product_count, monthly_total,
// out_of_stock_count, today_movements, recent_movements[5], top_products[5],
// lowest_stock[5], date_label). Las fechas se calculan en el servidor; el
// fallo de una consulta individual deja su widget en cero sin tumbar el resto.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "company_id no encontrado en el token",
		})
	}
	summary, err := h.uc.GetSummary(c.Context(), companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
