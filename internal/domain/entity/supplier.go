package entity

import "time"

// Supplier proveedor de productos. Relación muchos-a-muchos con Product vía
// la tabla supplier_product (un producto puede tener cero, uno o varios proveedores).
type Supplier struct {
	ID           string
	Name         string
	ContactEmail string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
