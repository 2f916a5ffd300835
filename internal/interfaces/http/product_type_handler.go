package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Alertas-api/internal/application/dto"
	"github.com/jhoicas/Alertas-api/internal/application/usecase"
	"github.com/jhoicas/Alertas-api/internal/domain"
)

// ProductTypeHandler maneja las peticiones HTTP para tipos de producto.
type ProductTypeHandler struct {
	uc *usecase.ProductTypeUseCase
}

// NewProductTypeHandler construye el handler.
func NewProductTypeHandler(uc *usecase.ProductTypeUseCase) *ProductTypeHandler {
	return &ProductTypeHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tipo de producto
// @Description  Define el umbral de stock bajo para los productos del tipo.
// @Tags         product-types
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductTypeRequest  true  "name y low_stock_threshold >= 0"
// @Success      201   {object}  dto.ProductTypeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/product-types [post]
func (h *ProductTypeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido y low_stock_threshold no puede ser negativo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar tipos de producto
// @Tags         product-types
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.ProductTypeListResponse
// @Router       /api/product-types [get]
func (h *ProductTypeHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}
