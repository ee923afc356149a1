package dto

import (
	"github.com/shopspring/decimal"

	"github.com/opencomercio/gestion-api/pkg/format"
)

// ReturnRowResponse fila del listado de devoluciones, con factura y cliente
// resueltos por join (solo presentación).
type ReturnRowResponse struct {
	ID             string             `json:"id"`
	InvoiceNumber  string             `json:"invoice_number"`
	CustomerName   string             `json:"customer_name"`
	Status         string             `json:"status"`
	StatusBadge    format.StatusBadge `json:"status_badge"`
	Reason         string             `json:"reason"`
	TotalAmount    decimal.Decimal    `json:"total_amount"`
	TotalFormatted string             `json:"total_formatted"`
	ReturnDate     string             `json:"return_date"` // forma corta para filas
	// CanTransition indica si la vista ofrece aprobar/rechazar (solo pendientes).
	CanTransition bool `json:"can_transition"`
}

// ReturnItemResponse línea de la devolución en el detalle.
type ReturnItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Reason      string          `json:"reason,omitempty"`
}

// ReturnDetailResponse agregado completo para la vista de detalle.
type ReturnDetailResponse struct {
	ReturnRowResponse
	ReturnDateLong string               `json:"return_date_long"` // forma larga para el detalle
	Items          []ReturnItemResponse `json:"items"`
	// ItemsMismatch se enciende cuando la suma de subtotales no coincide con
	// TotalAmount (chequeo defensivo; la discrepancia no se rechaza).
	ItemsMismatch bool `json:"items_mismatch,omitempty"`
}
