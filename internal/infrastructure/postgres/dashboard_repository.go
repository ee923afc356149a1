package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opencomercio/gestion-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para los widgets del dashboard.
// Requiere el pool directamente: las consultas se lanzan en paralelo desde el
// caso de uso y una tx compartida las serializaría.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el adaptador del dashboard.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// CountProducts cuenta los productos de la empresa.
func (r *DashboardRepo) CountProducts(ctx context.Context, companyID string) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE company_id = $1`, companyID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("dashboard.CountProducts: %w", err)
	}
	return n, nil
}

// CountOutOfStock cuenta productos DISTINTOS con existencia <= 0.
// Un producto agotado en dos bodegas cuenta una sola vez.
func (r *DashboardRepo) CountOutOfStock(ctx context.Context, companyID string) (int64, error) {
	const query = `
		SELECT COUNT(DISTINCT s.product_id)
		FROM stock s
		JOIN products p ON p.id = s.product_id
		WHERE p.company_id = $1 AND s.quantity <= 0`
	var n int64
	if err := r.pool.QueryRow(ctx, query, companyID).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard.CountOutOfStock: %w", err)
	}
	return n, nil
}

// CountMovementsSince cuenta los movimientos de inventario desde la fecha dada.
func (r *DashboardRepo) CountMovementsSince(ctx context.Context, companyID string, from time.Time) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM stock_movements m
		JOIN products p ON p.id = m.product_id
		WHERE p.company_id = $1 AND m.created_at >= $2`
	var n int64
	if err := r.pool.QueryRow(ctx, query, companyID, from).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard.CountMovementsSince: %w", err)
	}
	return n, nil
}

// RecentMovements lista los movimientos más recientes con producto y bodega resueltos.
func (r *DashboardRepo) RecentMovements(ctx context.Context, companyID string, limit int) ([]repository.MovementRow, error) {
	const query = `
		SELECT m.id, p.name, w.name, m.type, m.quantity, m.created_at
		FROM stock_movements m
		JOIN products   p ON p.id = m.product_id
		JOIN warehouses w ON w.id = m.warehouse_id
		WHERE p.company_id = $1
		ORDER BY m.created_at DESC
		LIMIT $2`
	rows, err := r.pool.Query(ctx, query, companyID, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.RecentMovements: %w", err)
	}
	defer rows.Close()
	var list []repository.MovementRow
	for rows.Next() {
		var row repository.MovementRow
		if err := rows.Scan(&row.ID, &row.ProductName, &row.WarehouseName, &row.Type, &row.Quantity, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// TopProductsByQuantity rankea productos por cantidad movida desde la fecha
// dada (agregación del lado del servidor, no en memoria).
func (r *DashboardRepo) TopProductsByQuantity(ctx context.Context, companyID string, from time.Time, limit int) ([]repository.TopProductRow, error) {
	const query = `
		SELECT p.id, p.sku, p.name, SUM(m.quantity) AS total_quantity
		FROM stock_movements m
		JOIN products p ON p.id = m.product_id
		WHERE p.company_id = $1 AND m.created_at >= $2
		GROUP BY p.id, p.sku, p.name
		ORDER BY total_quantity DESC
		LIMIT $3`
	rows, err := r.pool.Query(ctx, query, companyID, from, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.TopProductsByQuantity: %w", err)
	}
	defer rows.Close()
	var list []repository.TopProductRow
	for rows.Next() {
		var row repository.TopProductRow
		if err := rows.Scan(&row.ProductID, &row.SKU, &row.Name, &row.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// LowestStock lista las existencias más bajas por producto/bodega.
func (r *DashboardRepo) LowestStock(ctx context.Context, companyID string, limit int) ([]repository.LowStockRow, error) {
	const query = `
		SELECT p.id, p.sku, p.name, w.name, s.quantity
		FROM stock s
		JOIN products   p ON p.id = s.product_id
		JOIN warehouses w ON w.id = s.warehouse_id
		WHERE p.company_id = $1
		ORDER BY s.quantity ASC
		LIMIT $2`
	rows, err := r.pool.Query(ctx, query, companyID, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.LowestStock: %w", err)
	}
	defer rows.Close()
	var list []repository.LowStockRow
	for rows.Next() {
		var row repository.LowStockRow
		if err := rows.Scan(&row.ProductID, &row.SKU, &row.Name, &row.WarehouseName, &row.Quantity); err != nil {
			return nil, fmt.Errorf("scan low stock: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
