package entity

import "time"

// ProductType clasifica productos y define su punto de reorden.
// LowStockThreshold es la cantidad mínima: stock por debajo dispara alerta.
type ProductType struct {
	ID                string
	Name              string
	LowStockThreshold int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
