// seed genera un script SQL con datos de demostración para el back-office:
// árbol de categorías, catálogo de productos, ventas con sus líneas e
// inventario con historial inicial.
//
// Uso: go run ./cmd/seed
// Escribe: internal/infrastructure/postgres/migrations/002_seed_demo.sql
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type product struct {
	name     string
	sku      string
	price    string
	category string // nombre de la categoría, resuelto en el SQL con subquery
}

type sale struct {
	daysAgo   int
	productIx int // índice en products
	quantity  int64
	unitPrice string
}

type stock struct {
	productIx int
	onHand    int
	threshold int
}

var categories = []struct{ name, parent string }{
	{"Electronics", ""},
	{"Clothing", ""},
	{"Home & Kitchen", ""},
	{"Beauty", ""},
	{"Toys", ""},
	{"Laptops", "Electronics"},
	{"Smartphones", "Electronics"},
	{"T-Shirts", "Clothing"},
	{"Jeans", "Clothing"},
	{"Vacuums", "Home & Kitchen"},
	{"Coffee Makers", "Home & Kitchen"},
}

var products = []product{
	{"Apple MacBook Pro 16-inch", "MBP-16-2025", "2499.99", "Laptops"},
	{"Samsung Galaxy S21", "SGS21-2025", "799.99", "Smartphones"},
	{"Sony WH-1000XM4 Headphones", "WH-1000XM4", "348.00", "Electronics"},
	{"Nike Air Force 1 Sneakers", "AF1-2025", "90.00", "T-Shirts"},
	{"Levi's 501 Original Jeans", "501-2025", "59.99", "Jeans"},
	{"Dyson V11 Cordless Vacuum", "DY-V11-2025", "599.99", "Vacuums"},
	{"Keurig K-Elite Coffee Maker", "K-Elite-2025", "129.99", "Coffee Makers"},
	{"Olay Regenerist Face Cream", "Olay-2025", "24.99", "Beauty"},
	{"LEGO Star Wars Millennium Falcon", "LEGO-SW-2025", "159.99", "Toys"},
}

var demoSales = []sale{
	{10, 0, 1, "2499.99"},
	{15, 1, 1, "799.99"},
	{20, 7, 1, "24.99"},
	{5, 4, 2, "59.99"},
	{1, 2, 1, "348.00"},
}

var stocks = []stock{
	{0, 50, 5},
	{1, 200, 20},
	{2, 150, 15},
	{3, 30, 5},
	{4, 100, 10},
	{5, 120, 20},
	{6, 80, 8},
	{7, 300, 30},
	{8, 50, 5},
}

func main() {
	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_demo.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	now := time.Now()

	out.WriteString("-- Datos de demostración del back-office\n")
	out.WriteString("-- Generado con cmd/seed; las fechas son relativas al momento de generación.\n\n")

	// 1. Categorías: primero las raíces, luego las hijas con subquery al padre
	out.WriteString("-- 1. Categorías\n")
	for _, c := range categories {
		name := escapeSQL(c.name)
		if c.parent == "" {
			fmt.Fprintf(out, "INSERT INTO categories (name) VALUES ('%s');\n", name)
			continue
		}
		fmt.Fprintf(out, "INSERT INTO categories (name, parent_id)\n")
		fmt.Fprintf(out, "SELECT '%s', id FROM categories WHERE name = '%s';\n", name, escapeSQL(c.parent))
	}
	out.WriteString("\n")

	// 2. Productos con subquery a la categoría
	out.WriteString("-- 2. Productos\n")
	for _, p := range products {
		fmt.Fprintf(out, "INSERT INTO products (name, description, sku, price, category_id)\n")
		fmt.Fprintf(out, "SELECT '%s', '', '%s', %s, id FROM categories WHERE name = '%s';\n",
			escapeSQL(p.name), p.sku, p.price, escapeSQL(p.category))
	}
	out.WriteString("\n")

	// 3. Ventas con una línea cada una; el total es la suma de las líneas
	out.WriteString("-- 3. Ventas y líneas\n")
	for _, s := range demoSales {
		p := products[s.productIx]
		unit, _ := decimal.NewFromString(s.unitPrice)
		lineTotal := unit.Mul(decimal.NewFromInt(s.quantity))
		date := now.AddDate(0, 0, -s.daysAgo).Format("2006-01-02 15:04:05-07")

		fmt.Fprintf(out, "INSERT INTO sales (sale_date, total_amount) VALUES ('%s', %s);\n",
			date, lineTotal.StringFixed(2))
		fmt.Fprintf(out, "INSERT INTO sale_items (sale_id, product_id, quantity, unit_price, line_total)\n")
		fmt.Fprintf(out, "SELECT currval('sales_id_seq'), id, %d, %s, %s FROM products WHERE sku = '%s';\n",
			s.quantity, unit.StringFixed(2), lineTotal.StringFixed(2), p.sku)
	}
	out.WriteString("\n")

	// 4. Inventario e historial: alta inicial hace 30 días y una salida de
	// muestra hace 7, consistentes con la cantidad actual
	out.WriteString("-- 4. Inventario e historial\n")
	initialDate := now.AddDate(0, 0, -30).Format("2006-01-02 15:04:05-07")
	saleDate := now.AddDate(0, 0, -7).Format("2006-01-02 15:04:05-07")
	for _, st := range stocks {
		sku := products[st.productIx].sku
		fmt.Fprintf(out, "INSERT INTO inventory (product_id, quantity_on_hand, reorder_threshold)\n")
		fmt.Fprintf(out, "SELECT id, %d, %d FROM products WHERE sku = '%s';\n", st.onHand, st.threshold, sku)

		writeHistory(out, sku, st.onHand+2, "Initial stock", initialDate)
		writeHistory(out, sku, -2, "Sample sale", saleDate)
	}

	fmt.Printf("Generado %s: %d categorías, %d productos, %d ventas\n",
		outPath, len(categories), len(products), len(demoSales))
}

func writeHistory(out *os.File, sku string, changeQty int, reason, date string) {
	fmt.Fprintf(out, "INSERT INTO inventory_history (inventory_id, product_id, change_qty, reason, adjustment_id, changed_at)\n")
	fmt.Fprintf(out, "SELECT i.id, i.product_id, %d, '%s', '%s', '%s'\n", changeQty, escapeSQL(reason), uuid.NewString(), date)
	fmt.Fprintf(out, "FROM inventory i JOIN products p ON p.id = i.product_id WHERE p.sku = '%s';\n", sku)
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
