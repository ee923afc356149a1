package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/opencomercio/gestion-api/internal/domain/entity"
	"github.com/opencomercio/gestion-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo lecturas sobre facturas (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// CountByCustomer cuenta las facturas asociadas a un cliente. Es la lectura
// de guarda previa al borrado: con una sola factura el cliente no se elimina.
func (r *InvoiceRepo) CountByCustomer(ctx context.Context, customerID string) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM invoices WHERE customer_id = $1`, customerID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count invoices by customer: %w", err)
	}
	return n, nil
}

// ListByDateRange lista las facturas de la empresa dentro del rango de fechas
// (inclusive), con todos sus estados. El filtro por estado para el total del
// mes se hace en el caso de uso.
func (r *InvoiceRepo) ListByDateRange(ctx context.Context, companyID string, from, to time.Time) ([]*entity.Invoice, error) {
	query := `
		SELECT id, company_id, customer_id, number, invoice_date, status, total_amount, created_at, updated_at
		FROM invoices
		WHERE company_id = $1 AND invoice_date BETWEEN $2 AND $3
		ORDER BY invoice_date DESC`
	rows, err := r.q.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list invoices by date range: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(
			&inv.ID, &inv.CompanyID, &inv.CustomerID, &inv.Number, &inv.InvoiceDate,
			&inv.Status, &inv.TotalAmount, &inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}
