package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MovementRow movimiento reciente con producto y bodega resueltos por join.
type MovementRow struct {
	ID            string
	ProductName   string
	WarehouseName string
	Type          string
	Quantity      float64
	CreatedAt     time.Time
}

// TopProductRow producto rankeado por cantidad movida (agregación del lado del servidor).
type TopProductRow struct {
	ProductID     string
	SKU           string
	Name          string
	TotalQuantity decimal.Decimal
}

// LowStockRow existencia por producto/bodega para el widget de stock bajo.
type LowStockRow struct {
	ProductID     string
	SKU           string
	Name          string
	WarehouseName string
	Quantity      decimal.Decimal
}

// DashboardRepository consultas de solo lectura para el dashboard.
// Cada método corresponde a un widget independiente; el caso de uso las
// lanza en paralelo y aísla los fallos por consulta.
type DashboardRepository interface {
	CountProducts(ctx context.Context, companyID string) (int64, error)
	// CountOutOfStock cuenta productos DISTINTOS con existencia <= 0,
	// no filas de existencia.
	CountOutOfStock(ctx context.Context, companyID string) (int64, error)
	CountMovementsSince(ctx context.Context, companyID string, from time.Time) (int64, error)
	RecentMovements(ctx context.Context, companyID string, limit int) ([]MovementRow, error)
	TopProductsByQuantity(ctx context.Context, companyID string, from time.Time, limit int) ([]TopProductRow, error)
	LowestStock(ctx context.Context, companyID string, limit int) ([]LowStockRow, error)
}
