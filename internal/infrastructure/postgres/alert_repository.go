package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Alertas-api/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo consulta de solo lectura para el agregado de alertas de stock bajo.
type AlertRepo struct {
	pool *pgxpool.Pool
}

// NewAlertRepository construye el adaptador de alertas.
func NewAlertRepository(pool *pgxpool.Pool) *AlertRepo {
	return &AlertRepo{pool: pool}
}

// GetLowStockRows ejecuta el agregado central: una fila por combinación
// (producto, bodega, proveedor) de la empresa, con el stock actual, el umbral
// del tipo de producto y las ventas sumadas de los últimos windowDays días.
//
// Los filtros de umbral y ventas recientes van en HAVING y no en WHERE: el de
// ventas depende del SUM agregado, y se mantienen juntos para aplicar ambos
// después de agrupar. Los joins de proveedor y ventas son externos: producto
// sin proveedor llega con NULLs, producto sin ventas suma cero (y el HAVING lo
// descarta). El GROUP BY incluye al proveedor a propósito: un producto con N
// proveedores produce N filas.
//
// Empresa inexistente (pero con UUID bien formado) → cero filas, no error.
// No se impone ORDER BY; el orden es el que entregue PostgreSQL.
func (r *AlertRepo) GetLowStockRows(ctx context.Context, companyID string, windowDays int) ([]repository.LowStockRow, error) {
	const query = `
	SELECT
	    p.id                           AS product_id,
	    p.name                         AS product_name,
	    p.sku,
	    w.id                           AS warehouse_id,
	    w.name                         AS warehouse_name,
	    i.quantity                     AS current_stock,
	    pt.low_stock_threshold         AS threshold,
	    s.id                           AS supplier_id,
	    s.name                         AS supplier_name,
	    s.contact_email,
	    COALESCE(SUM(sa.quantity), 0)  AS recent_sold
	FROM inventory i
	JOIN products p        ON p.id  = i.product_id
	JOIN warehouses w      ON w.id  = i.warehouse_id
	JOIN product_types pt  ON pt.id = p.type_id
	LEFT JOIN supplier_product sp ON sp.product_id = p.id
	LEFT JOIN suppliers s         ON s.id = sp.supplier_id
	LEFT JOIN sales sa            ON sa.product_id = p.id
	   AND sa.sale_date >= now() - make_interval(days => $2)
	WHERE w.company_id = $1
	GROUP BY p.id, p.name, p.sku, w.id, w.name, i.quantity, pt.low_stock_threshold,
	         s.id, s.name, s.contact_email
	HAVING i.quantity < pt.low_stock_threshold
	   AND COALESCE(SUM(sa.quantity), 0) > 0`

	rows, err := r.pool.Query(ctx, query, companyID, windowDays)
	if err != nil {
		return nil, fmt.Errorf("alerts.GetLowStockRows: %w", err)
	}
	defer rows.Close()

	var results []repository.LowStockRow
	for rows.Next() {
		var row repository.LowStockRow
		if err := rows.Scan(
			&row.ProductID,
			&row.ProductName,
			&row.SKU,
			&row.WarehouseID,
			&row.WarehouseName,
			&row.CurrentStock,
			&row.Threshold,
			&row.SupplierID,
			&row.SupplierName,
			&row.ContactEmail,
			&row.RecentSold,
		); err != nil {
			return nil, fmt.Errorf("alerts.GetLowStockRows scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
