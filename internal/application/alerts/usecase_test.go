package alerts_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Alertas-api/internal/application/alerts"
	"github.com/jhoicas/Alertas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeAlertRepo implementa repository.AlertRepository en memoria.
type fakeAlertRepo struct {
	rows       []repository.LowStockRow
	err        error
	lastWindow int
	calls      int
}

func (f *fakeAlertRepo) GetLowStockRows(_ context.Context, _ string, windowDays int) ([]repository.LowStockRow, error) {
	f.calls++
	f.lastWindow = windowDays
	return f.rows, f.err
}

func strPtr(s string) *string { return &s }

func rowWithSupplier(productID, warehouseID, supplierID string, stock, threshold, recentSold int) repository.LowStockRow {
	return repository.LowStockRow{
		ProductID:     productID,
		ProductName:   "Producto " + productID,
		SKU:           "SKU-" + productID,
		WarehouseID:   warehouseID,
		WarehouseName: "Bodega " + warehouseID,
		CurrentStock:  stock,
		Threshold:     threshold,
		SupplierID:    strPtr(supplierID),
		SupplierName:  strPtr("Proveedor " + supplierID),
		ContactEmail:  strPtr(supplierID + "@proveedor.co"),
		RecentSold:    recentSold,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GetLowStockAlerts
// ──────────────────────────────────────────────────────────────────────────────

// Escenario de referencia: umbral 10, stock 5, 15 vendidas en 30 días, un proveedor.
// Debe producir exactamente una alerta con days_until_stockout = round(5/0.5) = 10.
func TestGetLowStockAlerts_EscenarioReferencia(t *testing.T) {
	repo := &fakeAlertRepo{rows: []repository.LowStockRow{
		rowWithSupplier("p1", "w1", "s1", 5, 10, 15),
	}}
	uc := alerts.NewLowStockUseCase(repo, 0) // 0 → default 30 días

	out, err := uc.GetLowStockAlerts(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, out.Alerts, 1)

	a := out.Alerts[0]
	assert.Equal(t, 5, a.CurrentStock)
	assert.Equal(t, 10, a.Threshold)
	assert.Equal(t, 10, a.DaysUntilStockout)
	assert.Equal(t, 1, out.TotalAlerts)
	require.NotNil(t, a.Supplier)
	assert.Equal(t, "s1", a.Supplier.ID)
	assert.Equal(t, "s1@proveedor.co", a.Supplier.ContactEmail)
	assert.Equal(t, 30, repo.lastWindow, "sin configuración debe usar la ventana de 30 días")
}

// Empresa sin filas: lista vacía (no nil) y total_alerts 0, nunca error.
func TestGetLowStockAlerts_SinFilasListaVacia(t *testing.T) {
	uc := alerts.NewLowStockUseCase(&fakeAlertRepo{}, 30)

	out, err := uc.GetLowStockAlerts(context.Background(), "c-inexistente")
	require.NoError(t, err)
	require.NotNil(t, out.Alerts, "alerts debe serializar como [] y no como null")
	assert.Empty(t, out.Alerts)
	assert.Equal(t, 0, out.TotalAlerts)
}

// Un producto con dos proveedores llega como dos filas del agregado y debe salir
// como dos alertas idénticas salvo el sub-registro supplier. Sin deduplicación.
func TestGetLowStockAlerts_DosProveedoresDosAlertas(t *testing.T) {
	repo := &fakeAlertRepo{rows: []repository.LowStockRow{
		rowWithSupplier("p1", "w1", "s1", 4, 10, 12),
		rowWithSupplier("p1", "w1", "s2", 4, 10, 12),
	}}
	uc := alerts.NewLowStockUseCase(repo, 30)

	out, err := uc.GetLowStockAlerts(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, out.Alerts, 2)
	assert.Equal(t, 2, out.TotalAlerts, "total_alerts cuenta filas, no productos distintos")

	a, b := out.Alerts[0], out.Alerts[1]
	assert.Equal(t, a.ProductID, b.ProductID)
	assert.Equal(t, a.WarehouseID, b.WarehouseID)
	assert.Equal(t, a.DaysUntilStockout, b.DaysUntilStockout)
	assert.NotEqual(t, a.Supplier.ID, b.Supplier.ID)
}

// Producto sin proveedor asociado (LEFT JOIN sin match): supplier viaja como null.
func TestGetLowStockAlerts_SinProveedorSupplierNull(t *testing.T) {
	repo := &fakeAlertRepo{rows: []repository.LowStockRow{{
		ProductID:     "p1",
		ProductName:   "Suelto",
		SKU:           "SKU-p1",
		WarehouseID:   "w1",
		WarehouseName: "Central",
		CurrentStock:  2,
		Threshold:     8,
		RecentSold:    6,
	}}}
	uc := alerts.NewLowStockUseCase(repo, 30)

	out, err := uc.GetLowStockAlerts(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, out.Alerts, 1)
	assert.Nil(t, out.Alerts[0].Supplier)
}

// Stock en cero: la proyección debe ser 0 días, no el resultado del piso.
func TestGetLowStockAlerts_StockCeroProyectaCeroDias(t *testing.T) {
	repo := &fakeAlertRepo{rows: []repository.LowStockRow{
		rowWithSupplier("p1", "w1", "s1", 0, 10, 3),
	}}
	uc := alerts.NewLowStockUseCase(repo, 30)

	out, err := uc.GetLowStockAlerts(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, out.Alerts, 1)
	assert.Equal(t, 0, out.Alerts[0].DaysUntilStockout)
}

// Idempotencia: dos ejecuciones sin escrituras intermedias producen lo mismo.
func TestGetLowStockAlerts_Idempotente(t *testing.T) {
	repo := &fakeAlertRepo{rows: []repository.LowStockRow{
		rowWithSupplier("p1", "w1", "s1", 5, 10, 15),
		rowWithSupplier("p2", "w1", "s1", 1, 4, 9),
	}}
	uc := alerts.NewLowStockUseCase(repo, 30)

	first, err := uc.GetLowStockAlerts(context.Background(), "c1")
	require.NoError(t, err)
	second, err := uc.GetLowStockAlerts(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 2, repo.calls)
}

// La ventana configurada debe propagarse al repositorio y a la estimación.
func TestGetLowStockAlerts_VentanaConfigurable(t *testing.T) {
	repo := &fakeAlertRepo{rows: []repository.LowStockRow{
		// 14 vendidas en 7 días = 2/día; stock 6 → 3 días.
		rowWithSupplier("p1", "w1", "s1", 6, 10, 14),
	}}
	uc := alerts.NewLowStockUseCase(repo, 7)

	out, err := uc.GetLowStockAlerts(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, 7, repo.lastWindow)
	require.Len(t, out.Alerts, 1)
	assert.Equal(t, 3, out.Alerts[0].DaysUntilStockout)
}

// Error del almacén: se propaga tal cual, sin respuesta parcial.
func TestGetLowStockAlerts_ErrorDelRepositorio(t *testing.T) {
	repoErr := errors.New("conexión perdida")
	uc := alerts.NewLowStockUseCase(&fakeAlertRepo{err: repoErr}, 30)

	out, err := uc.GetLowStockAlerts(context.Background(), "c1")
	assert.Nil(t, out)
	assert.ErrorIs(t, err, repoErr)
}
