package entity

import "time"

// InventoryLevel stock actual de un producto en una bodega.
// Único por par (producto, bodega); Quantity nunca es negativa.
type InventoryLevel struct {
	ProductID   string
	WarehouseID string
	Quantity    int
	UpdatedAt   time.Time
}
