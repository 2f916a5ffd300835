package alerts

import (
	"context"

	"github.com/jhoicas/Alertas-api/internal/application/dto"
	domainalerts "github.com/jhoicas/Alertas-api/internal/domain/alerts"
	"github.com/jhoicas/Alertas-api/internal/domain/repository"
)

// DefaultWindowDays ventana por defecto de "actividad reciente": solo alertan
// productos con ventas en los últimos 30 días.
const DefaultWindowDays = 30

// LowStockUseCase calcula las alertas de stock bajo de una empresa: consulta el
// agregado (producto × bodega × proveedor), decora cada fila con la proyección de
// quiebre de stock y arma la respuesta.
type LowStockUseCase struct {
	alertRepo  repository.AlertRepository
	windowDays int
}

// NewLowStockUseCase construye el caso de uso. windowDays <= 0 usa el default de 30.
func NewLowStockUseCase(alertRepo repository.AlertRepository, windowDays int) *LowStockUseCase {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	return &LowStockUseCase{alertRepo: alertRepo, windowDays: windowDays}
}

// GetLowStockAlerts devuelve las alertas de stock bajo de la empresa.
// Empresa sin filas que cumplan las reglas → lista vacía con total_alerts 0, no error.
// Se preserva el orden de filas del repositorio; sin deduplicación: un producto
// con N proveedores produce N alertas idénticas salvo los campos de proveedor.
func (uc *LowStockUseCase) GetLowStockAlerts(ctx context.Context, companyID string) (*dto.LowStockAlertsResponse, error) {
	rows, err := uc.alertRepo.GetLowStockRows(ctx, companyID, uc.windowDays)
	if err != nil {
		return nil, err
	}

	out := make([]dto.LowStockAlertDTO, 0, len(rows))
	for _, r := range rows {
		alert := dto.LowStockAlertDTO{
			ProductID:         r.ProductID,
			ProductName:       r.ProductName,
			SKU:               r.SKU,
			WarehouseID:       r.WarehouseID,
			WarehouseName:     r.WarehouseName,
			CurrentStock:      r.CurrentStock,
			Threshold:         r.Threshold,
			DaysUntilStockout: domainalerts.EstimateDaysUntilStockout(r.CurrentStock, r.RecentSold, uc.windowDays),
		}
		if r.SupplierID != nil {
			alert.Supplier = &dto.AlertSupplierDTO{
				ID:           *r.SupplierID,
				Name:         deref(r.SupplierName),
				ContactEmail: deref(r.ContactEmail),
			}
		}
		out = append(out, alert)
	}

	return &dto.LowStockAlertsResponse{
		Alerts:      out,
		TotalAlerts: len(out),
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
