package entity

import "time"

// Sale evento de venta de un producto (log append-only).
// Solo se consulta en agregado dentro de una ventana de tiempo reciente.
type Sale struct {
	ID        string
	ProductID string
	Quantity  int
	SaleDate  time.Time
}
