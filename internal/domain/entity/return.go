package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de devolución. Solo una devolución pendiente puede procesarse o rechazarse.
const (
	ReturnStatusPendiente = "pendiente"
	ReturnStatusProcesada = "procesada"
	ReturnStatusRechazada = "rechazada"
)

// Return representa una devolución asociada a una factura (y transitivamente
// a un cliente). TotalAmount debería coincidir con la suma de los subtotales
// de sus items; la discrepancia se registra pero no se rechaza (contrato del
// backend, no se reconcilia aquí).
type Return struct {
	ID          string
	CompanyID   string
	InvoiceID   string
	Status      string // pendiente, procesada, rechazada
	Reason      string
	TotalAmount decimal.Decimal
	ReturnDate  time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CanTransition indica si la devolución admite un cambio de estado.
// Las acciones aprobar/rechazar solo se ofrecen sobre devoluciones pendientes.
func (r *Return) CanTransition() bool {
	return r.Status == ReturnStatusPendiente
}

// ItemsTotal suma los subtotales de los items (chequeo defensivo contra TotalAmount).
func ItemsTotal(items []*ReturnItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal)
	}
	return total
}

// ReturnItem representa una línea de la devolución.
type ReturnItem struct {
	ID          string
	ReturnID    string
	ProductID   string
	ProductName string // resuelto por join, solo para presentación
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
	Reason      string // motivo a nivel de item, opcional
}
