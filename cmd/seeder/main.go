// cmd/seeder/main.go
//
// Seeds a development database with a small Chilean cleaning-supplies
// catalog: suppliers, inventories, products, their associations and a
// couple of received orders. Safe to re-run, every insert is keyed on
// the row's natural name.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type seedProduct struct {
	Name     string
	Brand    string
	Content  decimal.Decimal
	Unit     string
	Price    decimal.Decimal
	Category string
	Type     string
}

type seedAssociation struct {
	Product   string
	Inventory string
	Quantity  int
}

func main() {
	var (
		logLevel = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		dryRun   = flag.Bool("dry-run", false, "Preview changes without modifying database")
		wipe     = flag.Bool("wipe", false, "Truncate catalog tables before seeding")
	)
	flag.Parse()

	var slogLevel slog.Level
	switch *logLevel {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel}))
	slog.SetDefault(logger)

	dbURL := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		getEnv("DB_USER", "gestion"),
		getEnv("DB_PASSWORD", "gestion_dev_2025"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "gestion_inventario"),
		getEnv("DB_SSL_MODE", "disable"),
	)

	ctx := context.Background()

	if *dryRun {
		logger.Info("dry run, nothing will be written",
			slog.Int("products", len(products())),
			slog.Int("associations", len(associations())))
		return
	}

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		logger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if *wipe {
		logger.Warn("truncating catalog tables")
		_, err := pool.Exec(ctx, `TRUNCATE TABLE order_products, orders, reports,
			product_inventory, product_supplier, products, inventories, suppliers
			RESTART IDENTITY CASCADE`)
		if err != nil {
			logger.Error("failed to truncate", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if err := seed(ctx, pool, logger); err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seeding complete")
}

func seed(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	suppliers := map[string][4]string{
		"Distribuidora Andina": {"76.123.456-7", "ventas@andina.cl", "+56 2 2345 6789", "Av. Providencia 1234, Santiago"},
		"Comercial del Sur":    {"77.987.654-3", "contacto@comsur.cl", "+56 41 234 5678", "Calle O'Higgins 567, Concepcion"},
		"Importadora Pacifico": {"78.456.789-0", "pedidos@pacifico.cl", "+56 32 298 7654", "Blanco 890, Valparaiso"},
	}

	supplierIDs := make(map[string]int64, len(suppliers))
	for name, info := range suppliers {
		var id int64
		err := tx.QueryRow(ctx, `SELECT id FROM suppliers WHERE name = $1`, name).Scan(&id)
		if err == pgx.ErrNoRows {
			err = tx.QueryRow(ctx, `
				INSERT INTO suppliers (name, rut, email, phone, address)
				VALUES ($1, $2, $3, $4, $5)
				RETURNING id`,
				name, info[0], info[1], info[2], info[3]).Scan(&id)
		}
		if err != nil {
			return fmt.Errorf("failed to seed supplier %q: %w", name, err)
		}
		supplierIDs[name] = id
	}

	inventories := map[string]int{
		"Bodega Central": 300,
		"Bodega Norte":   150,
		"Sala de Ventas": 80,
	}

	inventoryIDs := make(map[string]int64, len(inventories))
	for name, maxStock := range inventories {
		var id int64
		err := tx.QueryRow(ctx, `SELECT id FROM inventories WHERE name = $1`, name).Scan(&id)
		if err == pgx.ErrNoRows {
			err = tx.QueryRow(ctx, `
				INSERT INTO inventories (name, max_stock)
				VALUES ($1, $2)
				RETURNING id`, name, maxStock).Scan(&id)
		}
		if err != nil {
			return fmt.Errorf("failed to seed inventory %q: %w", name, err)
		}
		inventoryIDs[name] = id
	}

	productIDs := make(map[string]int64)
	for _, p := range products() {
		var id int64
		err := tx.QueryRow(ctx, `SELECT id FROM products WHERE name = $1`, p.Name).Scan(&id)
		if err == pgx.ErrNoRows {
			err = tx.QueryRow(ctx, `
				INSERT INTO products (name, brand, content, unit, price, category, type)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
				RETURNING id`,
				p.Name, p.Brand, p.Content, p.Unit, p.Price, p.Category, p.Type).Scan(&id)
		}
		if err != nil {
			return fmt.Errorf("failed to seed product %q: %w", p.Name, err)
		}
		productIDs[p.Name] = id
	}

	// Associations and supplier links go in one batch
	batch := &pgx.Batch{}
	for _, a := range associations() {
		batch.Queue(`
			INSERT INTO product_inventory (product_id, inventory_id, quantity)
			VALUES ($1, $2, $3)
			ON CONFLICT (product_id, inventory_id) DO UPDATE SET
				quantity = EXCLUDED.quantity,
				updated_at = NOW()`,
			productIDs[a.Product], inventoryIDs[a.Inventory], a.Quantity)
	}
	for product := range productIDs {
		for _, supplier := range []string{"Distribuidora Andina", "Comercial del Sur"} {
			batch.Queue(`
				INSERT INTO product_supplier (product_id, supplier_id)
				VALUES ($1, $2)
				ON CONFLICT (product_id, supplier_id) DO NOTHING`,
				productIDs[product], supplierIDs[supplier])
		}
	}

	br := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("batch insert failed at statement %d: %w", i, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	logger.Info("catalog seeded",
		slog.Int("suppliers", len(supplierIDs)),
		slog.Int("inventories", len(inventoryIDs)),
		slog.Int("products", len(productIDs)))

	return nil
}

func products() []seedProduct {
	return []seedProduct{
		{"Detergente Liquido 1L", "Limpiamax", decimal.NewFromInt(1), "L", decimal.NewFromInt(2990), "limpieza", "unitario"},
		{"Cloro Gel 900ml", "Clorox", decimal.RequireFromString("0.9"), "L", decimal.NewFromInt(1890), "limpieza", "unitario"},
		{"Lavalozas 750ml", "Quix", decimal.RequireFromString("0.75"), "L", decimal.NewFromInt(1590), "limpieza", "unitario"},
		{"Toalla de Papel x2", "Elite", decimal.NewFromInt(2), "un", decimal.NewFromInt(2490), "papeleria", "pack"},
		{"Papel Higienico x12", "Confort", decimal.NewFromInt(12), "un", decimal.NewFromInt(8990), "papeleria", "pack"},
		{"Esponja Multiuso", "Virutex", decimal.NewFromInt(1), "un", decimal.NewFromInt(790), "accesorios", "unitario"},
		{"Bolsas de Basura 80L x10", "Suprabag", decimal.NewFromInt(10), "un", decimal.NewFromInt(3290), "accesorios", "pack"},
		{"Desinfectante Aerosol 360ml", "Lysoform", decimal.RequireFromString("0.36"), "L", decimal.NewFromInt(3990), "limpieza", "unitario"},
	}
}

func associations() []seedAssociation {
	return []seedAssociation{
		{"Detergente Liquido 1L", "Bodega Central", 120},
		{"Detergente Liquido 1L", "Sala de Ventas", 25},
		{"Cloro Gel 900ml", "Bodega Central", 90},
		{"Cloro Gel 900ml", "Bodega Norte", 40},
		{"Lavalozas 750ml", "Bodega Central", 60},
		{"Toalla de Papel x2", "Bodega Norte", 35},
		{"Papel Higienico x12", "Bodega Central", 80},
		{"Papel Higienico x12", "Sala de Ventas", 12},
		{"Esponja Multiuso", "Sala de Ventas", 8},
		{"Bolsas de Basura 80L x10", "Bodega Norte", 45},
		{"Desinfectante Aerosol 360ml", "Bodega Central", 30},
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
