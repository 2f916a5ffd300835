package repository

import (
	"context"

	"github.com/jhoicas/Alertas-api/internal/domain/entity"
)

// SupplierRepository puerto de persistencia para proveedores y su asociación
// muchos-a-muchos con productos (tabla supplier_product).
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Supplier, error)
	// AttachProduct crea la asociación proveedor↔producto. Duplicada → domain.ErrDuplicate.
	AttachProduct(ctx context.Context, supplierID, productID string) error
	ListByProduct(ctx context.Context, productID string) ([]*entity.Supplier, error)
}
