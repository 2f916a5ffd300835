package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Alertas-api/internal/domain"
	"github.com/jhoicas/Alertas-api/internal/domain/entity"
	"github.com/jhoicas/Alertas-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Acepta pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Get obtiene el stock del par (producto, bodega). No encontrado → (nil, nil).
func (r *InventoryRepo) Get(ctx context.Context, productID, warehouseID string) (*entity.InventoryLevel, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, updated_at
		FROM inventory WHERE product_id = $1 AND warehouse_id = $2`
	var l entity.InventoryLevel
	err := r.q.QueryRow(ctx, query, productID, warehouseID).Scan(
		&l.ProductID, &l.WarehouseID, &l.Quantity, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory level: %w", err)
	}
	return &l, nil
}

// AddQuantity suma qty al stock del par (producto, bodega); si no hay fila la crea.
// Violación de integridad (bodega inexistente, CHECK de cantidad) → domain.ErrConstraint.
func (r *InventoryRepo) AddQuantity(ctx context.Context, productID, warehouseID string, qty int) error {
	query := `
		INSERT INTO inventory (product_id, warehouse_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET quantity = inventory.quantity + EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(ctx, query, productID, warehouseID, qty)
	if err != nil {
		if isIntegrityViolation(err) {
			return domain.ErrConstraint
		}
		return fmt.Errorf("add inventory quantity: %w", err)
	}
	return nil
}

// ListByWarehouse lista el stock de una bodega con paginación.
func (r *InventoryRepo) ListByWarehouse(ctx context.Context, warehouseID string, limit, offset int) ([]*entity.InventoryLevel, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, updated_at
		FROM inventory WHERE warehouse_id = $1
		ORDER BY updated_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, warehouseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory levels: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryLevel
	for rows.Next() {
		var l entity.InventoryLevel
		if err := rows.Scan(&l.ProductID, &l.WarehouseID, &l.Quantity, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory level: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
