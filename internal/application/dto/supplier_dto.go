package dto

// SaveSupplierRequest alta o edición de proveedor.
type SaveSupplierRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	Notes         string `json:"notes"`
}

// SupplierResponse proveedor para listado y detalle.
type SupplierResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	Notes         string `json:"notes"`
}
