package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Alertas-api/internal/application/dto"
	"github.com/jhoicas/Alertas-api/internal/domain"
	"github.com/jhoicas/Alertas-api/internal/domain/entity"
	"github.com/jhoicas/Alertas-api/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo: creación atómica (producto + inventario
// inicial en una transacción) y lecturas.
type ProductUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso. productRepo se usa solo para lecturas
// fuera de transacción; las escrituras pasan por txRunner.
func NewProductUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, productRepo: productRepo}
}

// Create crea un producto y, si viene warehouse_id, ajusta el inventario inicial en
// la misma transacción. SKU duplicado → domain.ErrDuplicate (la verificación corre
// dentro de la tx; el constraint único de la tabla respalda la carrera).
// Cualquier fallo dentro de la tx revierte todo: nunca queda un producto sin su
// inventario ni inventario sin producto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (string, error) {
	if in.Name == "" || in.SKU == "" || in.Price == nil {
		return "", domain.ErrInvalidInput
	}
	qty := 0
	if in.InitialQuantity != nil {
		qty = *in.InitialQuantity
	}
	if qty < 0 {
		return "", domain.ErrInvalidInput
	}

	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		SKU:       in.SKU,
		Name:      in.Name,
		Price:     *in.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.TypeID != "" {
		typeID := in.TypeID
		product.TypeID = &typeID
	}

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
	) error {
		existing, err := productRepo.GetBySKU(ctx, in.SKU)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		if in.WarehouseID != "" {
			return inventoryRepo.AddQuantity(ctx, product.ID, in.WarehouseID, qty)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return product.ID, nil
}

// GetByID obtiene un producto por ID. No encontrado → (nil, nil).
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.productRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		SKU:       p.SKU,
		Name:      p.Name,
		Price:     p.Price,
		TypeID:    p.TypeID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
