package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/opencomercio/gestion-api/internal/domain/entity"
	"github.com/opencomercio/gestion-api/internal/domain/repository"
)

var _ repository.ReturnRepository = (*ReturnRepo)(nil)

// ReturnRepo implementación de ReturnRepository (usable con pool o tx).
// El join a invoices/customers resuelve número de factura y nombre de cliente
// solo para presentación; el filtro es siempre por la devolución.
type ReturnRepo struct {
	q Querier
}

// NewReturnRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReturnRepository(q Querier) *ReturnRepo {
	return &ReturnRepo{q: q}
}

const returnSelect = `
	SELECT r.id, r.company_id, r.invoice_id, r.status, r.reason, r.total_amount,
	       r.return_date, r.created_at, r.updated_at,
	       i.number, c.name
	FROM returns r
	JOIN invoices  i ON i.id = r.invoice_id
	JOIN customers c ON c.id = i.customer_id`

// ListByCompany lista las devoluciones de la empresa, más reciente primero.
// Devuelve el conjunto completo: búsqueda y paginación son en memoria.
func (r *ReturnRepo) ListByCompany(ctx context.Context, companyID string) ([]*repository.ReturnWithInvoice, error) {
	query := returnSelect + `
	WHERE r.company_id = $1
	ORDER BY r.return_date DESC, r.created_at DESC`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list returns: %w", err)
	}
	defer rows.Close()
	var list []*repository.ReturnWithInvoice
	for rows.Next() {
		ret, err := scanReturn(rows)
		if err != nil {
			return nil, fmt.Errorf("scan return: %w", err)
		}
		list = append(list, ret)
	}
	return list, rows.Err()
}

// GetByID obtiene una devolución con factura y cliente resueltos.
func (r *ReturnRepo) GetByID(ctx context.Context, id string) (*repository.ReturnWithInvoice, error) {
	query := returnSelect + ` WHERE r.id = $1`
	ret, err := scanReturn(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get return: %w", err)
	}
	return ret, nil
}

// ListItems lista las líneas de la devolución con el nombre del producto resuelto.
func (r *ReturnRepo) ListItems(ctx context.Context, returnID string) ([]*entity.ReturnItem, error) {
	query := `
		SELECT ri.id, ri.return_id, ri.product_id, p.name, ri.quantity, ri.unit_price, ri.subtotal, ri.reason
		FROM return_items ri
		JOIN products p ON p.id = ri.product_id
		WHERE ri.return_id = $1
		ORDER BY p.name`
	rows, err := r.q.Query(ctx, query, returnID)
	if err != nil {
		return nil, fmt.Errorf("list return items: %w", err)
	}
	defer rows.Close()
	var items []*entity.ReturnItem
	for rows.Next() {
		var it entity.ReturnItem
		if err := rows.Scan(
			&it.ID, &it.ReturnID, &it.ProductID, &it.ProductName,
			&it.Quantity, &it.UnitPrice, &it.Subtotal, &it.Reason,
		); err != nil {
			return nil, fmt.Errorf("scan return item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// UpdateStatus cambia el estado de la devolución.
func (r *ReturnRepo) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.q.Exec(ctx, `UPDATE returns SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update return status: %w", err)
	}
	return nil
}

func scanReturn(row pgx.Row) (*repository.ReturnWithInvoice, error) {
	var ret repository.ReturnWithInvoice
	err := row.Scan(
		&ret.ID, &ret.CompanyID, &ret.InvoiceID, &ret.Status, &ret.Reason, &ret.TotalAmount,
		&ret.ReturnDate, &ret.CreatedAt, &ret.UpdatedAt,
		&ret.InvoiceNumber, &ret.CustomerName,
	)
	if err != nil {
		return nil, err
	}
	return &ret, nil
}
