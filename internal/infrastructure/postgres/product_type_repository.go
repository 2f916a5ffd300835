package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Alertas-api/internal/domain/entity"
	"github.com/jhoicas/Alertas-api/internal/domain/repository"
)

var _ repository.ProductTypeRepository = (*ProductTypeRepo)(nil)

// ProductTypeRepo implementación del puerto ProductTypeRepository sobre PostgreSQL.
type ProductTypeRepo struct {
	pool *pgxpool.Pool
}

// NewProductTypeRepository construye el adaptador de persistencia para tipos de producto.
func NewProductTypeRepository(pool *pgxpool.Pool) *ProductTypeRepo {
	return &ProductTypeRepo{pool: pool}
}

// Create persiste un nuevo tipo de producto.
func (r *ProductTypeRepo) Create(ctx context.Context, pt *entity.ProductType) error {
	query := `
		INSERT INTO product_types (id, name, low_stock_threshold, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(ctx, query,
		pt.ID, pt.Name, pt.LowStockThreshold, pt.CreatedAt, pt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product type: %w", err)
	}
	return nil
}

// GetByID obtiene un tipo de producto por ID.
func (r *ProductTypeRepo) GetByID(ctx context.Context, id string) (*entity.ProductType, error) {
	query := `
		SELECT id, name, low_stock_threshold, created_at, updated_at
		FROM product_types WHERE id = $1`
	var pt entity.ProductType
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&pt.ID, &pt.Name, &pt.LowStockThreshold, &pt.CreatedAt, &pt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product type: %w", err)
	}
	return &pt, nil
}

// List lista tipos de producto con paginación.
func (r *ProductTypeRepo) List(ctx context.Context, limit, offset int) ([]*entity.ProductType, error) {
	query := `
		SELECT id, name, low_stock_threshold, created_at, updated_at
		FROM product_types ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list product types: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductType
	for rows.Next() {
		var pt entity.ProductType
		if err := rows.Scan(&pt.ID, &pt.Name, &pt.LowStockThreshold, &pt.CreatedAt, &pt.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product type: %w", err)
		}
		list = append(list, &pt)
	}
	return list, rows.Err()
}
