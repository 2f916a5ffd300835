package repository

import (
	"context"

	"github.com/jhoicas/Alertas-api/internal/domain/entity"
)

// SaleRepository puerto para el log de ventas (append-only).
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
}
