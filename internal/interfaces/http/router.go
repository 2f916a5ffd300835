package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Alertas-api/internal/application/alerts"
	"github.com/jhoicas/Alertas-api/internal/application/catalog"
	"github.com/jhoicas/Alertas-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LowStockUC    *alerts.LowStockUseCase
	ProductUC     *catalog.ProductUseCase
	CompanyUC     *usecase.CompanyUseCase
	WarehouseUC   *usecase.WarehouseUseCase
	SupplierUC    *usecase.SupplierUseCase
	SaleUC        *usecase.SaleUseCase
	ProductTypeUC *usecase.ProductTypeUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Companies y sus alertas de stock bajo
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)

	alertHandler := NewAlertHandler(deps.LowStockUC)
	companies.Get("/:company_id/alerts/low-stock", alertHandler.GetLowStock)

	// Products (creación atómica con inventario inicial)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:product_id/suppliers", supplierHandler.ListByProduct)

	// Product types (umbral de stock bajo por tipo)
	types := api.Group("/product-types")
	typeHandler := NewProductTypeHandler(deps.ProductTypeUC)
	types.Post("/", typeHandler.Create)
	types.Get("/", typeHandler.List)

	// Warehouses
	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Get("/:id/inventory", warehouseHandler.ListInventory)

	// Suppliers
	suppliers := api.Group("/suppliers")
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/:id/products/:product_id", supplierHandler.AttachProduct)

	// Sales (log append-only que alimenta las alertas)
	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Register)
}
