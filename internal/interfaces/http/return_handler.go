package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/opencomercio/gestion-api/internal/application/dto"
	"github.com/opencomercio/gestion-api/internal/application/usecase"
)

// ReturnHandler maneja las peticiones HTTP de la vista de devoluciones.
type ReturnHandler struct {
	uc *usecase.ReturnUseCase
}

// NewReturnHandler construye el handler.
func NewReturnHandler(uc *usecase.ReturnUseCase) *ReturnHandler {
	return &ReturnHandler{uc: uc}
}

// List GET /api/returns?search=&page=&status=
func (h *ReturnHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page, err := h.uc.List(c.Context(), companyID, q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

// Detail GET /api/returns/:id
// No-encontrado responde 303 con Location al listado (modo redirect de esta vista).
func (h *ReturnHandler) Detail(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	detail, err := h.uc.Detail(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(detail)
}

// Approve POST /api/returns/:id/approve?confirm=true
// Solo una devolución pendiente puede procesarse; fuera de pendiente → 409.
func (h *ReturnHandler) Approve(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	detail, err := h.uc.Approve(c.Context(), companyID, c.Params("id"), confirmed(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(detail)
}

// Reject POST /api/returns/:id/reject?confirm=true
func (h *ReturnHandler) Reject(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	detail, err := h.uc.Reject(c.Context(), companyID, c.Params("id"), confirmed(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(detail)
}

// Receipt GET /api/returns/:id/receipt
// Descarga el comprobante PDF de la devolución.
func (h *ReturnHandler) Receipt(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	id := c.Params("id")
	pdfBytes, err := h.uc.Receipt(c.Context(), companyID, id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="devolucion-%s.pdf"`, id))
	return c.Send(pdfBytes)
}
