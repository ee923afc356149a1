package repository

import (
	"context"
	"time"

	"github.com/opencomercio/gestion-api/internal/domain/entity"
)

// InvoiceRepository puerto de lectura sobre facturas.
// CountByCustomer es la lectura de guarda previa al borrado de clientes:
// un cliente con facturas asociadas nunca se elimina físicamente.
type InvoiceRepository interface {
	CountByCustomer(ctx context.Context, customerID string) (int64, error)
	ListByDateRange(ctx context.Context, companyID string, from, to time.Time) ([]*entity.Invoice, error)
}
