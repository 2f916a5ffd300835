package repository

import (
	"context"

	"github.com/jhoicas/Alertas-api/internal/domain/entity"
)

// InventoryRepository puerto para el stock por (producto, bodega).
type InventoryRepository interface {
	Get(ctx context.Context, productID, warehouseID string) (*entity.InventoryLevel, error)
	// AddQuantity suma qty al stock del par (producto, bodega); crea la fila si no existe.
	AddQuantity(ctx context.Context, productID, warehouseID string, qty int) error
	ListByWarehouse(ctx context.Context, warehouseID string, limit, offset int) ([]*entity.InventoryLevel, error)
}
