package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/Alertas-api/internal/application/alerts"
	"github.com/jhoicas/Alertas-api/internal/application/dto"
)

// AlertHandler maneja las peticiones HTTP de alertas de stock bajo.
type AlertHandler struct {
	uc *alerts.LowStockUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *alerts.LowStockUseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// GetLowStock godoc
// @Summary      Alertas de stock bajo de una empresa
// @Description  Una alerta por combinación (producto, bodega, proveedor) con stock
//
//	bajo el umbral del tipo de producto y ventas en la ventana reciente.
//
// @Tags         alerts
// @Produce      json
// @Param        company_id  path  string  true  "ID de la empresa (UUID)"
// @Success      200  {object}  dto.LowStockAlertsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id}/alerts/low-stock [get]
func (h *AlertHandler) GetLowStock(c *fiber.Ctx) error {
	companyID := c.Params("company_id")
	if _, err := uuid.Parse(companyID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_COMPANY_ID", Message: "company_id debe ser un UUID válido"})
	}
	// Empresa bien formada pero inexistente: lista vacía, no error.
	out, err := h.uc.GetLowStockAlerts(c.Context(), companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error consultando alertas"})
	}
	return c.JSON(out)
}
