package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto con inventario inicial opcional.
// Price es puntero para distinguir "ausente" (400) de cero.
type CreateProductRequest struct {
	Name            string           `json:"name" validate:"required,min=1,max=200"`
	SKU             string           `json:"sku" validate:"required,min=1,max=100"`
	Price           *decimal.Decimal `json:"price" validate:"required"`
	TypeID          string           `json:"type_id,omitempty"`
	WarehouseID     string           `json:"warehouse_id,omitempty"`
	InitialQuantity *int             `json:"initial_quantity,omitempty"` // default 0
}

// CreateProductResponse respuesta 201 de POST /api/products.
type CreateProductResponse struct {
	Message   string `json:"message"`
	ProductID string `json:"product_id"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	TypeID    *string         `json:"type_id"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
