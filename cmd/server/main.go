package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	catalogapp "github.com/stockflow/backend/internal/application/catalog"
	identityapp "github.com/stockflow/backend/internal/application/identity"
	inventoryapp "github.com/stockflow/backend/internal/application/inventory"
	partnerapp "github.com/stockflow/backend/internal/application/partner"
	tradeapp "github.com/stockflow/backend/internal/application/trade"
	"github.com/stockflow/backend/internal/infrastructure/auth"
	"github.com/stockflow/backend/internal/infrastructure/config"
	"github.com/stockflow/backend/internal/infrastructure/event"
	"github.com/stockflow/backend/internal/infrastructure/logger"
	"github.com/stockflow/backend/internal/infrastructure/notification"
	"github.com/stockflow/backend/internal/infrastructure/persistence"
	"github.com/stockflow/backend/internal/interfaces/http/handler"
	"github.com/stockflow/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server exited with error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync(log) }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	gormLogger := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLogger)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() { _ = db.Close() }()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() { _ = redisClient.Close() }()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Warn("redis unreachable, token revocation and notifications degraded", zap.Error(err))
	}

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	warehouseRepo := persistence.NewGormWarehouseRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	inventoryRepo := persistence.NewGormInventoryItemRepository(db.DB)
	transferRepo := persistence.NewGormStockTransferRepository(db.DB)
	noteRepo := persistence.NewGormCreditDebitNoteRepository(db.DB)
	purchaseOrderRepo := persistence.NewGormPurchaseOrderRepository(db.DB)
	salesOrderRepo := persistence.NewGormSalesOrderRepository(db.DB)

	inventoryScope := persistence.NewGormInventoryTransactionScope(db.DB)
	tradeScope := persistence.NewGormTradeTransactionScope(db.DB)

	// Auth
	jwtService := auth.NewJWTService(cfg.JWT)
	blacklist := auth.NewRedisTokenBlacklist(redisClient)

	// Event bus and realtime notifications
	eventBus := event.NewInMemoryEventBus(log)
	notifier := notification.NewStockUpdateHandler(
		notification.NewRedisPublisher(redisClient), productRepo, log)
	eventBus.Subscribe(notifier)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := eventBus.Start(ctx); err != nil {
		return fmt.Errorf("start event bus: %w", err)
	}
	defer func() { _ = eventBus.Stop(context.Background()) }()

	// Application services
	productService := catalogapp.NewProductService(productRepo)
	productService.SetEventPublisher(eventBus)

	warehouseService := partnerapp.NewWarehouseService(warehouseRepo, inventoryRepo)
	supplierService := partnerapp.NewSupplierService(supplierRepo)
	customerService := partnerapp.NewCustomerService(customerRepo)

	userService := identityapp.NewUserService(userRepo, warehouseRepo, jwtService)

	stockService := inventoryapp.NewStockService(inventoryRepo, productRepo, warehouseRepo)
	transferService := inventoryapp.NewTransferService(inventoryScope, transferRepo)
	transferService.SetEventPublisher(eventBus)
	adjustmentService := inventoryapp.NewAdjustmentService(inventoryScope, noteRepo)
	adjustmentService.SetEventPublisher(eventBus)

	purchaseOrderService := tradeapp.NewPurchaseOrderService(tradeScope, purchaseOrderRepo)
	purchaseOrderService.SetEventPublisher(eventBus)
	salesOrderService := tradeapp.NewSalesOrderService(tradeScope, salesOrderRepo)
	salesOrderService.SetEventPublisher(eventBus)

	engine := router.New(router.Config{
		Logger:         log,
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		Handlers: router.Handlers{
			System:        handler.NewSystemHandler(db.DB),
			Auth:          handler.NewAuthHandler(userService, jwtService, blacklist),
			Users:         handler.NewUserHandler(userService),
			Products:      handler.NewProductHandler(productService),
			Warehouses:    handler.NewWarehouseHandler(warehouseService),
			Suppliers:     handler.NewSupplierHandler(supplierService),
			Customers:     handler.NewCustomerHandler(customerService, salesOrderService),
			Stock:         handler.NewStockHandler(stockService),
			Transfers:     handler.NewTransferHandler(transferService),
			Adjustments:   handler.NewAdjustmentHandler(adjustmentService),
			PurchaseOrder: handler.NewPurchaseOrderHandler(purchaseOrderService),
			SalesOrder:    handler.NewSalesOrderHandler(salesOrderService),
		},
	})

	server := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening",
			zap.String("addr", server.Addr),
			zap.String("env", cfg.App.Env))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
