package router

import (
	"github.com/gin-gonic/gin"
	"github.com/stockflow/backend/internal/domain/identity"
	"github.com/stockflow/backend/internal/infrastructure/auth"
	"github.com/stockflow/backend/internal/infrastructure/logger"
	"github.com/stockflow/backend/internal/interfaces/http/handler"
	"github.com/stockflow/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// Handlers bundles every HTTP handler the router mounts
type Handlers struct {
	System        *handler.SystemHandler
	Auth          *handler.AuthHandler
	Users         *handler.UserHandler
	Products      *handler.ProductHandler
	Warehouses    *handler.WarehouseHandler
	Suppliers     *handler.SupplierHandler
	Customers     *handler.CustomerHandler
	Stock         *handler.StockHandler
	Transfers     *handler.TransferHandler
	Adjustments   *handler.AdjustmentHandler
	PurchaseOrder *handler.PurchaseOrderHandler
	SalesOrder    *handler.SalesOrderHandler
}

// Config holds router dependencies
type Config struct {
	Logger         *zap.Logger
	JWTService     *auth.JWTService
	TokenBlacklist auth.TokenBlacklist
	Handlers       Handlers
}

// New builds the gin engine with all routes and middleware mounted
func New(cfg Config) *gin.Engine {
	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(cfg.Logger))
	engine.Use(logger.Recovery(cfg.Logger))

	engine.GET("/health", cfg.Handlers.System.Health)
	engine.GET("/ready", cfg.Handlers.System.Ready)

	api := engine.Group("/api/v1")

	// Public routes
	api.POST("/auth/login", cfg.Handlers.Auth.Login)

	// Everything else requires a valid token
	authed := api.Group("")
	authed.Use(middleware.Authenticate(middleware.AuthConfig{
		JWTService:     cfg.JWTService,
		TokenBlacklist: cfg.TokenBlacklist,
		Logger:         cfg.Logger,
	}))

	admins := middleware.RequireRole(identity.RoleSuperAdmin, identity.RoleWarehouseAdmin)
	superAdmin := middleware.RequireRole(identity.RoleSuperAdmin)

	authed.POST("/auth/logout", cfg.Handlers.Auth.Logout)
	authed.GET("/auth/me", cfg.Handlers.Auth.Me)

	// User administration
	users := authed.Group("/users", superAdmin)
	{
		users.POST("", cfg.Handlers.Users.Register)
		users.GET("", cfg.Handlers.Users.List)
		users.GET("/:id", cfg.Handlers.Users.Get)
		users.PUT("/:id/warehouse", cfg.Handlers.Users.AssignWarehouse)
		users.DELETE("/:id", cfg.Handlers.Users.Delete)
	}

	// Product catalog
	products := authed.Group("/products")
	{
		products.GET("", cfg.Handlers.Products.List)
		products.GET("/:id", cfg.Handlers.Products.Get)
		products.GET("/barcode/:barcode", cfg.Handlers.Products.GetByBarcode)
		products.POST("", admins, cfg.Handlers.Products.Create)
		products.PUT("/:id", admins, cfg.Handlers.Products.Update)
		products.DELETE("/:id", superAdmin, cfg.Handlers.Products.Delete)
	}

	// Warehouses
	warehouses := authed.Group("/warehouses")
	{
		warehouses.GET("", cfg.Handlers.Warehouses.List)
		warehouses.GET("/:id", cfg.Handlers.Warehouses.Get)
		warehouses.GET("/:id/usage", cfg.Handlers.Stock.WarehouseUsage)
		warehouses.POST("", superAdmin, cfg.Handlers.Warehouses.Create)
		warehouses.PUT("/:id", superAdmin, cfg.Handlers.Warehouses.Update)
		warehouses.DELETE("/:id", superAdmin, cfg.Handlers.Warehouses.Delete)
	}

	// Suppliers
	suppliers := authed.Group("/suppliers")
	{
		suppliers.GET("", cfg.Handlers.Suppliers.List)
		suppliers.GET("/:id", cfg.Handlers.Suppliers.Get)
		suppliers.POST("", admins, cfg.Handlers.Suppliers.Create)
		suppliers.PUT("/:id", admins, cfg.Handlers.Suppliers.Update)
		suppliers.DELETE("/:id", superAdmin, cfg.Handlers.Suppliers.Delete)
	}

	// Customers
	customers := authed.Group("/customers")
	{
		customers.GET("", cfg.Handlers.Customers.List)
		customers.GET("/:id", cfg.Handlers.Customers.Get)
		customers.GET("/:id/orders", cfg.Handlers.Customers.Orders)
		customers.POST("", admins, cfg.Handlers.Customers.Create)
		customers.PUT("/:id", admins, cfg.Handlers.Customers.Update)
		customers.DELETE("/:id", superAdmin, cfg.Handlers.Customers.Delete)
	}

	// Stock levels
	stock := authed.Group("/stock")
	{
		stock.GET("", cfg.Handlers.Stock.List)
		stock.GET("/low", cfg.Handlers.Stock.LowStock)
		stock.GET("/:productId/:warehouseId", cfg.Handlers.Stock.Get)
	}

	// Transfers: any authenticated user may request, resolution is guarded
	// per destination warehouse inside the service
	transfers := authed.Group("/transfers")
	{
		transfers.POST("", cfg.Handlers.Transfers.Create)
		transfers.GET("", cfg.Handlers.Transfers.List)
		transfers.GET("/:id", cfg.Handlers.Transfers.Get)
		transfers.POST("/:id/approve", admins, cfg.Handlers.Transfers.Approve)
		transfers.POST("/:id/reject", admins, cfg.Handlers.Transfers.Reject)
	}

	// Credit/debit notes and manual adjustments
	notes := authed.Group("/notes")
	{
		notes.GET("", cfg.Handlers.Adjustments.ListNotes)
		notes.GET("/:id", cfg.Handlers.Adjustments.GetNote)
		notes.POST("", admins, cfg.Handlers.Adjustments.CreateNote)
	}
	authed.POST("/inventory/adjust", superAdmin, cfg.Handlers.Adjustments.Adjust)

	// Purchase orders
	purchaseOrders := authed.Group("/purchase-orders")
	{
		purchaseOrders.GET("", cfg.Handlers.PurchaseOrder.List)
		purchaseOrders.GET("/:id", cfg.Handlers.PurchaseOrder.Get)
		purchaseOrders.POST("", admins, cfg.Handlers.PurchaseOrder.Create)
		purchaseOrders.PUT("/:id/status", admins, cfg.Handlers.PurchaseOrder.UpdateStatus)
	}

	// Customer orders
	salesOrders := authed.Group("/sales-orders")
	{
		salesOrders.GET("", cfg.Handlers.SalesOrder.List)
		salesOrders.GET("/:id", cfg.Handlers.SalesOrder.Get)
		salesOrders.POST("", cfg.Handlers.SalesOrder.Create)
		salesOrders.PUT("/:id/status", admins, cfg.Handlers.SalesOrder.UpdateStatus)
	}

	return engine
}
