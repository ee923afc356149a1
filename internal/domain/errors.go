// Package domain define los errores centinela que cruzan capas.
package domain

import "errors"

// Errores genéricos de recursos.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrInvalidInput = errors.New("entrada inválida")
)

// Errores de autenticación y autorización.
var (
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrSelfAction         = errors.New("acción no permitida sobre el propio usuario")
)

// Guardas de integridad referencial resueltas antes de mutar.
var (
	ErrHasInvoices = errors.New("el cliente tiene facturas asociadas")
)
