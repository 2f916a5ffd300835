package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo.
// SKU es único global; TypeID referencia el tipo de producto que define el umbral
// de stock bajo (nil = producto sin clasificar, no genera alertas).
type Product struct {
	ID        string
	SKU       string
	Name      string
	Price     decimal.Decimal
	TypeID    *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
