package repository

import "context"

// LowStockRow fila cruda del agregado de stock bajo: una por combinación
// (producto, bodega, proveedor). Los campos de proveedor son punteros porque
// el join es externo: un producto sin proveedor asociado llega con nil en los tres.
type LowStockRow struct {
	ProductID     string
	ProductName   string
	SKU           string
	WarehouseID   string
	WarehouseName string
	CurrentStock  int
	Threshold     int
	SupplierID    *string
	SupplierName  *string
	ContactEmail  *string
	RecentSold    int
}

// AlertRepository puerto de solo lectura para el agregado de alertas de stock bajo.
// Devuelve las filas en el orden que entregue el almacén; el consumidor no debe
// asumir un orden particular.
type AlertRepository interface {
	// GetLowStockRows devuelve una fila por (producto, bodega, proveedor) donde:
	// la bodega pertenece a la empresa, el stock actual es menor que el umbral
	// del tipo de producto, y la suma de ventas dentro de la ventana de
	// windowDays días es mayor que cero. Empresa inexistente → lista vacía.
	GetLowStockRows(ctx context.Context, companyID string, windowDays int) ([]LowStockRow, error)
}
