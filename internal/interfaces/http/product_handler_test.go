package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Alertas-api/internal/application/catalog"
	"github.com/jhoicas/Alertas-api/internal/domain/entity"
	"github.com/jhoicas/Alertas-api/internal/domain/repository"
	apphttp "github.com/jhoicas/Alertas-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	byID  map[string]*entity.Product
	bySKU map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{
		byID:  make(map[string]*entity.Product),
		bySKU: make(map[string]*entity.Product),
	}
}

func (m *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	m.byID[p.ID] = p
	m.bySKU[p.SKU] = p
	return nil
}

func (m *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return m.byID[id], nil
}

func (m *memProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	return m.bySKU[sku], nil
}

func (m *memProductRepo) List(_ context.Context, _, _ int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(m.byID))
	for _, p := range m.byID {
		out = append(out, p)
	}
	return out, nil
}

type memInventoryRepo struct {
	qty map[string]int // clave: productID + "|" + warehouseID
}

func newMemInventoryRepo() *memInventoryRepo {
	return &memInventoryRepo{qty: make(map[string]int)}
}

func (m *memInventoryRepo) Get(_ context.Context, productID, warehouseID string) (*entity.InventoryLevel, error) {
	q, ok := m.qty[productID+"|"+warehouseID]
	if !ok {
		return nil, nil
	}
	return &entity.InventoryLevel{ProductID: productID, WarehouseID: warehouseID, Quantity: q}, nil
}

func (m *memInventoryRepo) AddQuantity(_ context.Context, productID, warehouseID string, qty int) error {
	m.qty[productID+"|"+warehouseID] += qty
	return nil
}

func (m *memInventoryRepo) ListByWarehouse(_ context.Context, _ string, _, _ int) ([]*entity.InventoryLevel, error) {
	return nil, nil
}

// fakeTxRunner ejecuta el closure directamente sobre los repos en memoria.
// La semántica de rollback se valida en los tests del caso de uso.
type fakeTxRunner struct {
	products  *memProductRepo
	inventory *memInventoryRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.ProductRepository, repository.InventoryRepository) error) error {
	return fn(f.products, f.inventory)
}

func buildProductApp() (*fiber.App, *memProductRepo, *memInventoryRepo) {
	products := newMemProductRepo()
	inventory := newMemInventoryRepo()
	uc := catalog.NewProductUseCase(&fakeTxRunner{products: products, inventory: inventory}, products)
	handler := apphttp.NewProductHandler(uc)

	app := fiber.New()
	app.Post("/api/products", handler.Create)
	app.Get("/api/products/:id", handler.GetByID)
	return app, products, inventory
}

func postProduct(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: producto válido con bodega y cantidad inicial → 201 con el mensaje
// y el ID; el inventario queda registrado.
func TestCreateProduct_ConInventarioInicial(t *testing.T) {
	app, products, inventory := buildProductApp()

	resp := postProduct(t, app, `{
		"name": "Teclado mecánico",
		"sku": "ELEC-001",
		"price": "189900.00",
		"warehouse_id": "w1",
		"initial_quantity": 25
	}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Product created", body["message"])
	require.NotEmpty(t, body["product_id"])

	created := products.byID[body["product_id"]]
	require.NotNil(t, created, "el producto debe quedar persistido")
	assert.Equal(t, 25, inventory.qty[created.ID+"|w1"], "el inventario inicial debe registrarse")
}

// Caso 1b: sin warehouse_id → 201 y ningún movimiento de inventario.
func TestCreateProduct_SinBodega_NoTocaInventario(t *testing.T) {
	app, _, inventory := buildProductApp()

	resp := postProduct(t, app, `{"name": "Mouse", "sku": "ELEC-002", "price": "79900"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Empty(t, inventory.qty, "sin bodega no debe haber filas de inventario")
}

// Caso 2: faltan campos requeridos → 400 VALIDATION.
func TestCreateProduct_SinPrecio_Retorna400(t *testing.T) {
	app, _, _ := buildProductApp()

	resp := postProduct(t, app, `{"name": "Mouse", "sku": "ELEC-002"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "VALIDATION")
}

// Caso 2b: cantidad inicial negativa → 400 VALIDATION.
func TestCreateProduct_CantidadNegativa_Retorna400(t *testing.T) {
	app, _, _ := buildProductApp()

	resp := postProduct(t, app, `{
		"name": "Mouse", "sku": "ELEC-002", "price": "79900",
		"warehouse_id": "w1", "initial_quantity": -5
	}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Caso 3: precio no numérico → el body no parsea → 400 INVALID_BODY.
func TestCreateProduct_PrecioNoNumerico_Retorna400(t *testing.T) {
	app, _, _ := buildProductApp()

	resp := postProduct(t, app, `{"name": "Mouse", "sku": "ELEC-002", "price": "no-es-precio"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_BODY")
}

// Caso 4: SKU repetido → 409 DUPLICATE y el catálogo conserva un solo producto.
func TestCreateProduct_SKUDuplicado_Retorna409(t *testing.T) {
	app, products, _ := buildProductApp()

	resp := postProduct(t, app, `{"name": "Teclado", "sku": "ELEC-001", "price": "100"}`)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postProduct(t, app, `{"name": "Teclado v2", "sku": "ELEC-001", "price": "200"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "DUPLICATE")
	assert.Len(t, products.byID, 1, "el duplicado no debe crear un segundo producto")
	assert.Equal(t, "Teclado", products.bySKU["ELEC-001"].Name, "el original debe quedar intacto")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GetByID
// ──────────────────────────────────────────────────────────────────────────────

func TestGetProduct_NoExiste_Retorna404(t *testing.T) {
	app, _, _ := buildProductApp()

	req := httptest.NewRequest(http.MethodGet, "/api/products/desconocido", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_FOUND")
}
