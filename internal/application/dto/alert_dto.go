package dto

// AlertSupplierDTO sub-registro de proveedor dentro de una alerta.
// Los tres campos se anulan juntos: si el producto no tiene proveedor asociado,
// el campo supplier de la alerta viaja como null.
type AlertSupplierDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
}

// LowStockAlertDTO una alerta de stock bajo por combinación (producto, bodega, proveedor).
// Un producto con varios proveedores genera una alerta por proveedor; es el
// comportamiento esperado del negocio, no deduplicar.
type LowStockAlertDTO struct {
	ProductID         string            `json:"product_id"`
	ProductName       string            `json:"product_name"`
	SKU               string            `json:"sku"`
	WarehouseID       string            `json:"warehouse_id"`
	WarehouseName     string            `json:"warehouse_name"`
	CurrentStock      int               `json:"current_stock"`
	Threshold         int               `json:"threshold"`
	DaysUntilStockout int               `json:"days_until_stockout"`
	Supplier          *AlertSupplierDTO `json:"supplier"`
}

// LowStockAlertsResponse respuesta de GET /api/companies/{id}/alerts/low-stock.
// TotalAlerts es siempre len(Alerts): cuenta filas, no productos distintos.
type LowStockAlertsResponse struct {
	Alerts      []LowStockAlertDTO `json:"alerts"`
	TotalAlerts int                `json:"total_alerts"`
}
