package repository

import (
	"context"

	"github.com/jhoicas/Alertas-api/internal/domain/entity"
)

// ProductTypeRepository define el puerto de persistencia para ProductType (DIP).
type ProductTypeRepository interface {
	Create(ctx context.Context, pt *entity.ProductType) error
	GetByID(ctx context.Context, id string) (*entity.ProductType, error)
	List(ctx context.Context, limit, offset int) ([]*entity.ProductType, error)
}
