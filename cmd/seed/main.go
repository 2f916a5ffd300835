// seed genera un script SQL de datos de demostración: una empresa con dos
// bodegas, tipos de producto con umbral, productos con y sin proveedor,
// inventario bajo el umbral y ventas recientes que disparan las alertas.
//
// Uso: go run ./cmd/seed
// Escribe: internal/infrastructure/postgres/migrations/002_demo_data.sql
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type product struct {
	id    string
	sku   string
	name  string
	price string
	typ   string
}

func main() {
	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_demo_data.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	companyID := uuid.NewString()
	warehouseCentro := uuid.NewString()
	warehouseNorte := uuid.NewString()
	typeElectronica := uuid.NewString()
	typePerecedero := uuid.NewString()
	supplierAndina := uuid.NewString()
	supplierPacifico := uuid.NewString()

	products := []product{
		{uuid.NewString(), "ELEC-001", "Teclado mecánico", "189900.00", typeElectronica},
		{uuid.NewString(), "ELEC-002", "Mouse inalámbrico", "79900.00", typeElectronica},
		{uuid.NewString(), "PERE-001", "Café de origen 500g", "32000.00", typePerecedero},
	}

	out.WriteString("-- Datos de demostración para las alertas de stock bajo.\n")
	out.WriteString("-- Generado con cmd/seed.\n\n")

	fmt.Fprintf(out, "INSERT INTO companies (id, name, email) VALUES\n")
	fmt.Fprintf(out, "  ('%s', '%s', '%s');\n\n", companyID, escapeSQL("Comercial Andes S.A.S"), "contacto@andes.example.com")

	fmt.Fprintf(out, "INSERT INTO warehouses (id, company_id, name, address) VALUES\n")
	fmt.Fprintf(out, "  ('%s', '%s', 'Bodega Centro', 'Cra 7 # 12-34'),\n", warehouseCentro, companyID)
	fmt.Fprintf(out, "  ('%s', '%s', 'Bodega Norte', 'Calle 170 # 45-6');\n\n", warehouseNorte, companyID)

	fmt.Fprintf(out, "INSERT INTO product_types (id, name, low_stock_threshold) VALUES\n")
	fmt.Fprintf(out, "  ('%s', 'Electrónica', 20),\n", typeElectronica)
	fmt.Fprintf(out, "  ('%s', 'Perecedero', 15);\n\n", typePerecedero)

	fmt.Fprintf(out, "INSERT INTO products (id, sku, name, price, type_id) VALUES\n")
	for i, p := range products {
		sep := ","
		if i == len(products)-1 {
			sep = ";"
		}
		fmt.Fprintf(out, "  ('%s', '%s', '%s', %s, '%s')%s\n", p.id, p.sku, escapeSQL(p.name), p.price, p.typ, sep)
	}
	out.WriteString("\n")

	// Stock bajo el umbral en Centro; Norte queda con stock sano para contraste.
	fmt.Fprintf(out, "INSERT INTO inventory (product_id, warehouse_id, quantity) VALUES\n")
	fmt.Fprintf(out, "  ('%s', '%s', 5),\n", products[0].id, warehouseCentro)
	fmt.Fprintf(out, "  ('%s', '%s', 0),\n", products[1].id, warehouseCentro)
	fmt.Fprintf(out, "  ('%s', '%s', 8),\n", products[2].id, warehouseCentro)
	fmt.Fprintf(out, "  ('%s', '%s', 120);\n\n", products[0].id, warehouseNorte)

	fmt.Fprintf(out, "INSERT INTO suppliers (id, name, contact_email) VALUES\n")
	fmt.Fprintf(out, "  ('%s', 'Distribuciones Andina', 'ventas@andina.example.com'),\n", supplierAndina)
	fmt.Fprintf(out, "  ('%s', 'Importadora Pacífico', 'pedidos@pacifico.example.com');\n\n", supplierPacifico)

	// El teclado tiene dos proveedores (dos alertas por bodega); el café no tiene ninguno.
	fmt.Fprintf(out, "INSERT INTO supplier_product (supplier_id, product_id) VALUES\n")
	fmt.Fprintf(out, "  ('%s', '%s'),\n", supplierAndina, products[0].id)
	fmt.Fprintf(out, "  ('%s', '%s'),\n", supplierPacifico, products[0].id)
	fmt.Fprintf(out, "  ('%s', '%s');\n\n", supplierAndina, products[1].id)

	// Ventas dentro de los 30 días y una vieja que no cuenta para la ventana.
	out.WriteString("INSERT INTO sales (id, product_id, quantity, sale_date) VALUES\n")
	fmt.Fprintf(out, "  ('%s', '%s', 10, now() - interval '3 days'),\n", uuid.NewString(), products[0].id)
	fmt.Fprintf(out, "  ('%s', '%s', 5, now() - interval '12 days'),\n", uuid.NewString(), products[0].id)
	fmt.Fprintf(out, "  ('%s', '%s', 7, now() - interval '1 day'),\n", uuid.NewString(), products[1].id)
	fmt.Fprintf(out, "  ('%s', '%s', 4, now() - interval '9 days'),\n", uuid.NewString(), products[2].id)
	fmt.Fprintf(out, "  ('%s', '%s', 40, now() - interval '90 days');\n", uuid.NewString(), products[2].id)

	fmt.Printf("Generado %s: 1 empresa, 2 bodegas, %d productos\n", outPath, len(products))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
