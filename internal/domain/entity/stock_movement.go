package entity

// Tipos de movimiento de inventario que el dashboard presenta.
// La enumeración es cerrada; valores desconocidos se muestran tal cual.
const (
	MovementTypeIn     = "in"
	MovementTypeOut    = "out"
	MovementTypeAdjust = "adjust"
)
