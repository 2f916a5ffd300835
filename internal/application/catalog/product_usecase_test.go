package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Alertas-api/internal/application/catalog"
	"github.com/jhoicas/Alertas-api/internal/application/dto"
	"github.com/jhoicas/Alertas-api/internal/domain"
	"github.com/jhoicas/Alertas-api/internal/domain/entity"
	"github.com/jhoicas/Alertas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: un "almacén" compartido y un TxRunner que lo copia antes de
// ejecutar el callback y lo restaura si falla, imitando el Commit/Rollback real.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	productsBySKU map[string]*entity.Product
	productsByID  map[string]*entity.Product
	inventory     map[string]int // "productID|warehouseID" → qty
	inventoryErr  error          // fuerza fallo en AddQuantity
}

func newMemStore() *memStore {
	return &memStore{
		productsBySKU: map[string]*entity.Product{},
		productsByID:  map[string]*entity.Product{},
		inventory:     map[string]int{},
	}
}

func (s *memStore) snapshot() *memStore {
	c := newMemStore()
	for k, v := range s.productsBySKU {
		c.productsBySKU[k] = v
	}
	for k, v := range s.productsByID {
		c.productsByID[k] = v
	}
	for k, v := range s.inventory {
		c.inventory[k] = v
	}
	c.inventoryErr = s.inventoryErr
	return c
}

func (s *memStore) restore(from *memStore) {
	s.productsBySKU = from.productsBySKU
	s.productsByID = from.productsByID
	s.inventory = from.inventory
}

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	if _, ok := r.s.productsBySKU[p.SKU]; ok {
		return domain.ErrDuplicate
	}
	r.s.productsBySKU[p.SKU] = p
	r.s.productsByID[p.ID] = p
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.s.productsByID[id], nil
}

func (r *memProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	return r.s.productsBySKU[sku], nil
}

func (r *memProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.productsByID {
		out = append(out, p)
	}
	return out, nil
}

type memInventoryRepo struct{ s *memStore }

func (r *memInventoryRepo) Get(_ context.Context, productID, warehouseID string) (*entity.InventoryLevel, error) {
	qty, ok := r.s.inventory[productID+"|"+warehouseID]
	if !ok {
		return nil, nil
	}
	return &entity.InventoryLevel{ProductID: productID, WarehouseID: warehouseID, Quantity: qty}, nil
}

func (r *memInventoryRepo) AddQuantity(_ context.Context, productID, warehouseID string, qty int) error {
	if r.s.inventoryErr != nil {
		return r.s.inventoryErr
	}
	r.s.inventory[productID+"|"+warehouseID] += qty
	return nil
}

func (r *memInventoryRepo) ListByWarehouse(_ context.Context, warehouseID string, limit, offset int) ([]*entity.InventoryLevel, error) {
	return nil, nil
}

type memTxRunner struct{ s *memStore }

func (t *memTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
) error) error {
	before := t.s.snapshot()
	if err := fn(&memProductRepo{s: t.s}, &memInventoryRepo{s: t.s}); err != nil {
		t.s.restore(before)
		return err
	}
	return nil
}

func newUseCase() (*catalog.ProductUseCase, *memStore) {
	s := newMemStore()
	return catalog.NewProductUseCase(&memTxRunner{s: s}, &memProductRepo{s: s}), s
}

func priceRef(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func intRef(v int) *int { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_ProductoConInventarioInicial(t *testing.T) {
	uc, s := newUseCase()

	id, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:            "Café 500g",
		SKU:             "CAFE-500",
		Price:           priceRef(18500),
		WarehouseID:     "w1",
		InitialQuantity: intRef(40),
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	assert.Equal(t, 40, s.inventory[id+"|w1"], "el inventario inicial debe quedar en la bodega indicada")
	require.Contains(t, s.productsByID, id)
	assert.Equal(t, "CAFE-500", s.productsByID[id].SKU)
}

func TestCreate_SinBodegaNoTocaInventario(t *testing.T) {
	uc, s := newUseCase()

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:  "Panela",
		SKU:   "PAN-01",
		Price: priceRef(3200),
	})
	require.NoError(t, err)
	assert.Empty(t, s.inventory)
}

// initial_quantity ausente equivale a 0: crea la fila de inventario con cantidad 0.
func TestCreate_CantidadInicialPorDefectoCero(t *testing.T) {
	uc, s := newUseCase()

	id, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:        "Arroz",
		SKU:         "ARZ-01",
		Price:       priceRef(4100),
		WarehouseID: "w1",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, s.inventory[id+"|w1"])
}

func TestCreate_CamposRequeridosFaltantes(t *testing.T) {
	uc, _ := newUseCase()

	casos := []dto.CreateProductRequest{
		{SKU: "X", Price: priceRef(1)},          // sin name
		{Name: "X", Price: priceRef(1)},         // sin sku
		{Name: "X", SKU: "X"},                   // sin price
	}
	for _, in := range casos {
		_, err := uc.Create(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestCreate_CantidadNegativaRechazadaSinEscribir(t *testing.T) {
	uc, s := newUseCase()

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:            "Azúcar",
		SKU:             "AZU-01",
		Price:           priceRef(2900),
		WarehouseID:     "w1",
		InitialQuantity: intRef(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, s.productsByID, "la validación debe ocurrir antes de cualquier escritura")
	assert.Empty(t, s.inventory)
}

// SKU en uso: 409 (ErrDuplicate) y el producto existente queda intacto.
func TestCreate_SKUDuplicadoNoModificaExistente(t *testing.T) {
	uc, s := newUseCase()

	firstID, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Original", SKU: "DUP-01", Price: priceRef(100),
	})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Impostor", SKU: "DUP-01", Price: priceRef(999),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	require.Len(t, s.productsByID, 1)
	assert.Equal(t, "Original", s.productsByID[firstID].Name)
}

// Fallo al escribir el inventario: rollback total, tampoco debe quedar el producto.
func TestCreate_FalloEnInventarioRevierteProducto(t *testing.T) {
	uc, s := newUseCase()
	s.inventoryErr = errors.New("violación de llave foránea")

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:            "Fantasma",
		SKU:             "FAN-01",
		Price:           priceRef(50),
		WarehouseID:     "w-inexistente",
		InitialQuantity: intRef(5),
	})
	require.Error(t, err)
	assert.Empty(t, s.productsByID, "rollback: no debe quedar producto sin su inventario")
	assert.Empty(t, s.inventory)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests lecturas
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_NoEncontradoDevuelveNil(t *testing.T) {
	uc, _ := newUseCase()
	out, err := uc.GetByID(context.Background(), "no-existe")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestList_DevuelveCreados(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "A", SKU: "A-1", Price: priceRef(1)})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), dto.CreateProductRequest{Name: "B", SKU: "B-1", Price: priceRef(2)})
	require.NoError(t, err)

	out, err := uc.List(context.Background(), 20, 0)
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, 20, out.Page.Limit)
}
