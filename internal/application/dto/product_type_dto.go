package dto

import "time"

// CreateProductTypeRequest entrada para crear un tipo de producto con su umbral.
type CreateProductTypeRequest struct {
	Name              string `json:"name" validate:"required,min=1,max=200"`
	LowStockThreshold int    `json:"low_stock_threshold" validate:"required,gte=0"`
}

// ProductTypeResponse salida de un tipo de producto.
type ProductTypeResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ProductTypeListResponse lista paginada de tipos de producto.
type ProductTypeListResponse struct {
	Items []ProductTypeResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
