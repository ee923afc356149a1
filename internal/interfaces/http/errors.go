package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/opencomercio/gestion-api/internal/application/detailview"
	"github.com/opencomercio/gestion-api/internal/application/dto"
	"github.com/opencomercio/gestion-api/internal/application/listview"
	"github.com/opencomercio/gestion-api/internal/domain"
)

// respondError traduce los errores de dominio al contrato HTTP unificado.
//
//	ErrConfirmRequired      → 409 CONFIRM_REQUIRED (falta confirm=true)
//	NotFoundError redirect  → 303 + Location a la vista de lista
//	NotFoundError inline    → 404 NOT_FOUND
//	ErrHasInvoices          → 409 HAS_INVOICES
//	ErrSelfAction           → 403 SELF_ACTION
//	ErrConflict             → 409 CONFLICT
//	ErrDuplicate / email    → 409
//	ErrInvalidInput         → 400, ErrUnauthorized → 401, resto → 500
func respondError(c *fiber.Ctx, err error) error {
	var notFound *detailview.NotFoundError
	if errors.As(err, &notFound) {
		if notFound.Mode == detailview.NotFoundRedirect {
			c.Set(fiber.HeaderLocation, notFound.RedirectTo)
			return c.Status(fiber.StatusSeeOther).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado, volver al listado"})
		}
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
	}
	switch {
	case errors.Is(err, listview.ErrConfirmRequired):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFIRM_REQUIRED", Message: "la acción requiere confirm=true"})
	case errors.Is(err, domain.ErrHasInvoices):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "HAS_INVOICES", Message: "el cliente tiene facturas asociadas; desactívelo en su lugar"})
	case errors.Is(err, domain.ErrSelfAction):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "SELF_ACTION", Message: "no puede eliminarse a sí mismo"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "la operación no es válida en el estado actual"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un registro con esos datos"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de entrada inválidos"})
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "cuenta inactiva o suspendida"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// confirmed lee el parámetro confirm de la petición. Las mutaciones exigen
// confirm=true explícito: es la puerta de confirmación de la vista.
func confirmed(c *fiber.Ctx) bool {
	return c.QueryBool("confirm")
}
