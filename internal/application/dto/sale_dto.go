package dto

import "time"

// RegisterSaleRequest body para POST /api/sales. SaleDate opcional (default: ahora).
type RegisterSaleRequest struct {
	ProductID string     `json:"product_id" validate:"required,uuid"`
	Quantity  int        `json:"quantity" validate:"required,gt=0"`
	SaleDate  *time.Time `json:"sale_date,omitempty"`
}

// SaleResponse salida de un evento de venta registrado.
type SaleResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	SaleDate  time.Time `json:"sale_date"`
}
