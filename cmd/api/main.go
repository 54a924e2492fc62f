// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/alezcf/ProyectoGestion-sub000/internal/adapters/db"
	redis_a "github.com/alezcf/ProyectoGestion-sub000/internal/adapters/redis_adapter"
	"github.com/alezcf/ProyectoGestion-sub000/internal/core/ports"
	"github.com/alezcf/ProyectoGestion-sub000/internal/core/services"
	"github.com/alezcf/ProyectoGestion-sub000/internal/handlers"
	"github.com/alezcf/ProyectoGestion-sub000/internal/handlers/middleware"
	"github.com/alezcf/ProyectoGestion-sub000/internal/pkg/config"
	"github.com/alezcf/ProyectoGestion-sub000/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
	GoVersion = "unknown"
)

func main() {
	applog := logger.SetupLogger("debug", "json")
	slogger := applog.Logger

	slogger.Info("starting inventory management system",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("go_version", GoVersion),
	)

	// Load configuration
	slogger.Info("loading configuration")
	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	applog = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger = applog.Logger
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
	)

	ctx := context.Background()

	deps, err := initializeDependencies(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	// Run database migrations outside production
	if cfg.App.Environment != "production" {
		if err := runMigrations(ctx, cfg, slogger); err != nil {
			slogger.Error("failed to run migrations", slog.String("error", err.Error()))
			// Don't exit in development, just warn
		}
	}

	server := setupHTTPServer(cfg, deps, applog)

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()),
		)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received",
			slog.String("signal", sig.String()),
		)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	database       *db.Database
	redisClient    *redis.Client
	redisCache     ports.CacheRepository
	asynqClient    *asynq.Client
	asynqInspector *asynq.Inspector

	orderService       ports.OrderService
	associationService ports.AssociationService
	monitorService     ports.MonitorService
	reportService      ports.ReportService
	dashboardService   ports.DashboardService
	catalogService     ports.CatalogService

	orderHandler       *handlers.OrderHandler
	associationHandler *handlers.AssociationHandler
	reportHandler      *handlers.ReportHandler
	dashboardHandler   *handlers.DashboardHandler
	productHandler     *handlers.ProductHandler
	inventoryHandler   *handlers.InventoryHandler
	supplierHandler    *handlers.SupplierHandler
	healthHandler      *handlers.HealthHandler
}

func (d *dependencies) cleanup() {
	if d.database != nil {
		d.database.Close()
	}
	if d.redisClient != nil {
		d.redisClient.Close()
	}
	if d.asynqClient != nil {
		d.asynqClient.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, slogger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	slogger.Info("connecting to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Name),
	)

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     cfg.Database.MaxConnections,
		MinConnections:     cfg.Database.MinConnections,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
	}, slogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	deps.database = database

	slogger.Info("connecting to Redis",
		slog.String("host", cfg.Redis.Host),
		slog.String("port", cfg.Redis.Port),
	)

	redisClient := redis_a.NewClient(cfg.Redis)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	deps.redisClient = redisClient
	deps.redisCache = redis_a.NewCache(redisClient, cfg.Redis.TTL, slogger)

	asynqRedisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	}
	deps.asynqClient = asynq.NewClient(asynqRedisOpt)
	deps.asynqInspector = asynq.NewInspector(asynqRedisOpt)

	// Repositories and transaction manager
	repos := db.NewRepositories(database, slogger)
	txManager := db.NewTxManager(database, slogger)

	// Services
	deps.orderService = services.NewOrderService(txManager, repos, deps.redisCache, slogger)
	deps.associationService = services.NewAssociationService(txManager, repos, deps.redisCache, slogger)
	deps.monitorService = services.NewMonitorService(repos, deps.redisCache, services.MonitorConfig{
		InventoryLowWaterMark: cfg.Monitor.InventoryLowWaterMark,
		ProductLowWaterMark:   cfg.Monitor.ProductLowWaterMark,
		LockTTL:               cfg.Monitor.LockTTL,
	}, slogger)
	deps.reportService = services.NewReportService(repos, slogger)
	deps.dashboardService = services.NewDashboardService(repos, deps.redisCache, slogger)
	deps.catalogService = services.NewCatalogService(repos, deps.redisCache, slogger)

	// Handlers
	deps.orderHandler = handlers.NewOrderHandler(deps.orderService, slogger)
	deps.associationHandler = handlers.NewAssociationHandler(deps.associationService, slogger)
	deps.reportHandler = handlers.NewReportHandler(deps.reportService, deps.monitorService, slogger)
	deps.dashboardHandler = handlers.NewDashboardHandler(deps.dashboardService, slogger)
	deps.productHandler = handlers.NewProductHandler(deps.catalogService, slogger)
	deps.inventoryHandler = handlers.NewInventoryHandler(deps.catalogService, slogger)
	deps.supplierHandler = handlers.NewSupplierHandler(deps.catalogService, slogger)
	deps.healthHandler = handlers.NewHealthHandler(database, redisClient, deps.asynqInspector, cfg, slogger)

	slogger.Info("all dependencies initialized successfully")
	return deps, nil
}

func setupHTTPServer(cfg *config.Config, deps *dependencies, applog *logger.Logger) *http.Server {
	mux := http.NewServeMux()

	// Apply middleware in reverse order (innermost first)
	var handler http.Handler = mux

	if cfg.App.Environment != "test" {
		handler = middleware.RequestID(handler)
		handler = middleware.Logger(applog)(handler)
		handler = middleware.Recovery(applog.Logger)(handler)
	}

	if cfg.Security.RateLimitRequests > 0 {
		handler = middleware.RateLimit(cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration)(handler)
	}

	if len(cfg.Security.AllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.Security.AllowedOrigins)(handler)
	}

	if cfg.Security.SecureHeaders {
		handler = middleware.SecureHeaders(handler)
	}

	registerRoutes(mux, deps)

	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        handler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(applog.Handler(), slog.LevelError),
	}
}

func registerRoutes(mux *http.ServeMux, deps *dependencies) {
	apiV1 := "/api/v1"

	// Health and readiness
	mux.HandleFunc("GET /health", deps.healthHandler.Health)
	mux.HandleFunc("GET /ready", deps.healthHandler.Readiness)
	mux.HandleFunc("GET "+apiV1+"/health", deps.healthHandler.Health)

	// Orders
	mux.HandleFunc("POST "+apiV1+"/pedidos", deps.orderHandler.CreateOrder)
	mux.HandleFunc("GET "+apiV1+"/pedidos", deps.orderHandler.ListOrders)
	mux.HandleFunc("GET "+apiV1+"/pedidos/{id}", deps.orderHandler.GetOrder)
	mux.HandleFunc("PATCH "+apiV1+"/pedidos/{id}/estado", deps.orderHandler.UpdateOrderStatus)
	mux.HandleFunc("DELETE "+apiV1+"/pedidos/{id}", deps.orderHandler.DeleteOrder)

	// Product-inventory associations
	mux.HandleFunc("POST "+apiV1+"/producto-inventario", deps.associationHandler.CreateAssociations)
	mux.HandleFunc("PUT "+apiV1+"/producto-inventario", deps.associationHandler.UpdateAssociations)
	mux.HandleFunc("GET "+apiV1+"/producto-inventario", deps.associationHandler.ListAssociations)
	mux.HandleFunc("GET "+apiV1+"/producto-inventario/{id}", deps.associationHandler.GetAssociation)
	mux.HandleFunc("PATCH "+apiV1+"/producto-inventario/{id}/cantidad", deps.associationHandler.UpdateQuantity)
	mux.HandleFunc("DELETE "+apiV1+"/producto-inventario/{id}", deps.associationHandler.DeleteAssociation)

	// Product-supplier associations
	mux.HandleFunc("POST "+apiV1+"/producto-proveedor", deps.associationHandler.LinkSupplier)
	mux.HandleFunc("GET "+apiV1+"/producto-proveedor", deps.associationHandler.ListSuppliersByProduct)
	mux.HandleFunc("DELETE "+apiV1+"/producto-proveedor/{id}", deps.associationHandler.UnlinkSupplier)

	// Reports and the manual sweep trigger
	mux.HandleFunc("GET "+apiV1+"/reportes", deps.reportHandler.ListReports)
	mux.HandleFunc("GET "+apiV1+"/reportes/{id}", deps.reportHandler.GetReport)
	mux.HandleFunc("PATCH "+apiV1+"/reportes/{id}/resolver", deps.reportHandler.ResolveReport)
	mux.HandleFunc("DELETE "+apiV1+"/reportes/{id}", deps.reportHandler.DeleteReport)
	mux.HandleFunc("POST "+apiV1+"/reportes/sweep", deps.reportHandler.TriggerSweep)

	// Dashboard
	mux.HandleFunc("GET "+apiV1+"/dashboard/stock", deps.dashboardHandler.StockSummary)

	// Catalog: products
	mux.HandleFunc("POST "+apiV1+"/productos", deps.productHandler.CreateProduct)
	mux.HandleFunc("GET "+apiV1+"/productos", deps.productHandler.ListProducts)
	mux.HandleFunc("GET "+apiV1+"/productos/{id}", deps.productHandler.GetProduct)
	mux.HandleFunc("PUT "+apiV1+"/productos/{id}", deps.productHandler.UpdateProduct)
	mux.HandleFunc("DELETE "+apiV1+"/productos/{id}", deps.productHandler.DeleteProduct)

	// Catalog: inventories
	mux.HandleFunc("POST "+apiV1+"/inventarios", deps.inventoryHandler.CreateInventory)
	mux.HandleFunc("GET "+apiV1+"/inventarios", deps.inventoryHandler.ListInventories)
	mux.HandleFunc("GET "+apiV1+"/inventarios/{id}", deps.inventoryHandler.GetInventory)
	mux.HandleFunc("PUT "+apiV1+"/inventarios/{id}", deps.inventoryHandler.UpdateInventory)
	mux.HandleFunc("DELETE "+apiV1+"/inventarios/{id}", deps.inventoryHandler.DeleteInventory)

	// Catalog: suppliers
	mux.HandleFunc("POST "+apiV1+"/proveedores", deps.supplierHandler.CreateSupplier)
	mux.HandleFunc("GET "+apiV1+"/proveedores", deps.supplierHandler.ListSuppliers)
	mux.HandleFunc("GET "+apiV1+"/proveedores/{id}", deps.supplierHandler.GetSupplier)
	mux.HandleFunc("PUT "+apiV1+"/proveedores/{id}", deps.supplierHandler.UpdateSupplier)
	mux.HandleFunc("DELETE "+apiV1+"/proveedores/{id}", deps.supplierHandler.DeleteSupplier)
}

func runMigrations(ctx context.Context, cfg *config.Config, slogger *slog.Logger) error {
	slogger.Info("running database migrations")

	migrationConfig := &db.MigrationConfig{
		DatabaseURL: cfg.GetDatabaseURL(),
		SourcePath:  cfg.Database.MigrationPath,
		TableName:   "schema_migrations",
		SchemaName:  "public",
	}

	return db.RunMigrationsWithRetry(ctx, migrationConfig, slogger, 3)
}
