package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Cada widget proviene de una consulta independiente; un fallo aislado deja
// su widget en cero/vacío sin bloquear el resto.
type DashboardSummaryDTO struct {
	ProductCount int64 `json:"product_count"`

	// Total facturado del mes en curso: facturas con fecha >= día 1 del mes
	// y estado emitida o pagada.
	MonthlyTotal          decimal.Decimal `json:"monthly_total"`
	MonthlyTotalFormatted string          `json:"monthly_total_formatted"`

	// Productos agotados: ids DISTINTOS con existencia <= 0.
	OutOfStockCount int64 `json:"out_of_stock_count"`

	TodayMovements int64 `json:"today_movements"`

	RecentMovements []MovementRowDTO `json:"recent_movements"` // 5 más recientes
	TopProducts     []TopProductDTO  `json:"top_products"`     // top 5 por cantidad movida
	LowestStock     []LowStockDTO    `json:"lowest_stock"`     // 5 existencias más bajas

	DateLabel string `json:"date_label"` // ej: "Agosto 2026"
}

// MovementRowDTO movimiento reciente para la tabla del dashboard.
type MovementRowDTO struct {
	ID            string  `json:"id"`
	ProductName   string  `json:"product_name"`
	WarehouseName string  `json:"warehouse_name"`
	Type          string  `json:"type"`
	TypeLabel     string  `json:"type_label"` // etiqueta en español para la tabla
	Quantity      float64 `json:"quantity"`
	CreatedAt     string  `json:"created_at"` // forma corta
}

// TopProductDTO producto del ranking por cantidad movida.
type TopProductDTO struct {
	ProductID     string          `json:"product_id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
}

// LowStockDTO existencia baja por producto/bodega.
type LowStockDTO struct {
	ProductID     string          `json:"product_id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	WarehouseName string          `json:"warehouse_name"`
	Quantity      decimal.Decimal `json:"quantity"`
}
