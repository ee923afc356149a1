package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de factura.
const (
	InvoiceStatusBorrador = "borrador" // guardada sin emitir
	InvoiceStatusEmitida  = "emitida"  // emitida al cliente
	InvoiceStatusPagada   = "pagada"   // pagada en su totalidad
	InvoiceStatusAnulada  = "anulada"  // anulada, no cuenta para totales
)

// Invoice representa la cabecera de una factura de venta.
type Invoice struct {
	ID          string
	CompanyID   string
	CustomerID  string
	Number      string
	InvoiceDate time.Time
	Status      string
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
