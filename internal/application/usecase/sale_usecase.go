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

// SaleUseCase registra eventos de venta en el log append-only que alimenta la
// ventana de "actividad reciente" de las alertas de stock bajo.
type SaleUseCase struct {
	repo        repository.SaleRepository
	productRepo repository.ProductRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository, productRepo repository.ProductRepository) *SaleUseCase {
	return &SaleUseCase{repo: repo, productRepo: productRepo}
}

// Register registra una venta. Quantity debe ser positiva; SaleDate ausente = ahora.
// El producto debe existir.
func (uc *SaleUseCase) Register(ctx context.Context, in dto.RegisterSaleRequest) (*dto.SaleResponse, error) {
	if in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	saleDate := time.Now()
	if in.SaleDate != nil {
		saleDate = *in.SaleDate
	}
	sale := &entity.Sale{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		SaleDate:  saleDate,
	}
	if err := uc.repo.Create(ctx, sale); err != nil {
		return nil, err
	}
	return &dto.SaleResponse{
		ID:        sale.ID,
		ProductID: sale.ProductID,
		Quantity:  sale.Quantity,
		SaleDate:  sale.SaleDate,
	}, nil
}
