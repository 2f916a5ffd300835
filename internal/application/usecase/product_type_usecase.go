package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Alertas-api/internal/application/dto"
	"github.com/jhoicas/Alertas-api/internal/domain"
	"github.com/jhoicas/Alertas-api/internal/domain/entity"
	"github.com/jhoicas/Alertas-api/internal/domain/repository"
)

// ProductTypeUseCase administra los tipos de producto y sus umbrales de stock bajo.
type ProductTypeUseCase struct {
	repo repository.ProductTypeRepository
}

// NewProductTypeUseCase construye el caso de uso.
func NewProductTypeUseCase(repo repository.ProductTypeRepository) *ProductTypeUseCase {
	return &ProductTypeUseCase{repo: repo}
}

// Create crea un tipo de producto. El umbral no puede ser negativo.
func (uc *ProductTypeUseCase) Create(ctx context.Context, in dto.CreateProductTypeRequest) (*dto.ProductTypeResponse, error) {
	if in.Name == "" || in.LowStockThreshold < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	pt := &entity.ProductType{
		ID:                uuid.New().String(),
		Name:              in.Name,
		LowStockThreshold: in.LowStockThreshold,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(ctx, pt); err != nil {
		return nil, err
	}
	return toProductTypeResponse(pt), nil
}

// List lista tipos de producto con paginación.
func (uc *ProductTypeUseCase) List(ctx context.Context, limit, offset int) (*dto.ProductTypeListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductTypeResponse, 0, len(list))
	for _, pt := range list {
		items = append(items, *toProductTypeResponse(pt))
	}
	return &dto.ProductTypeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toProductTypeResponse(pt *entity.ProductType) *dto.ProductTypeResponse {
	return &dto.ProductTypeResponse{
		ID:                pt.ID,
		Name:              pt.Name,
		LowStockThreshold: pt.LowStockThreshold,
		CreatedAt:         pt.CreatedAt,
		UpdatedAt:         pt.UpdatedAt,
	}
}
