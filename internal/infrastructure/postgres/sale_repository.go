package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Alertas-api/internal/domain"
	"github.com/jhoicas/Alertas-api/internal/domain/entity"
	"github.com/jhoicas/Alertas-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
// La tabla sales es append-only: solo INSERT, nunca UPDATE ni DELETE.
type SaleRepo struct {
	pool *pgxpool.Pool
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(pool *pgxpool.Pool) *SaleRepo {
	return &SaleRepo{pool: pool}
}

// Create registra un evento de venta. Producto inexistente → domain.ErrConstraint (FK).
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, product_id, quantity, sale_date)
		VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(ctx, query, sale.ID, sale.ProductID, sale.Quantity, sale.SaleDate)
	if err != nil {
		if isIntegrityViolation(err) {
			return domain.ErrConstraint
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}
