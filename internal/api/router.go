package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eshop-platform/eshop-api/internal/api/handler"
	"github.com/eshop-platform/eshop-api/internal/api/middleware"
	"github.com/eshop-platform/eshop-api/internal/core/domain"
	"github.com/eshop-platform/eshop-api/internal/core/ports"
)

// RouterConfig carries the wired services and infrastructure handles the
// router needs. Construction of repositories and services happens in main.
type RouterConfig struct {
	BasePath   string
	Tokens     ports.TokenService
	Auth       ports.AuthService
	Products   ports.ProductService
	Categories ports.CategoryService
	Orders     ports.OrderService
	Mongo      *mongo.Database
	Redis      *redis.Client
	Logger     zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
//
// The authorization policy is explicit per route: register/login and the
// health/metrics probes are public, every catalog and order read requires a
// valid token, and writes plus the low-stock report require the admin role.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("eshop"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(cfg.Auth)
	productHandler := handler.NewProductHandler(cfg.Products)
	categoryHandler := handler.NewCategoryHandler(cfg.Categories)
	orderHandler := handler.NewOrderHandler(cfg.Orders)

	authRequired := middleware.Auth(cfg.Tokens)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	base := e.Group(cfg.BasePath)

	// --- Auth routes (public) ---
	base.POST("/register", authHandler.Register)
	base.POST("/login", authHandler.Login)

	// --- Product routes ---
	products := base.Group("/products", authRequired)
	products.GET("", productHandler.List)
	products.GET("/search", productHandler.Search)
	products.GET("/low-stock", productHandler.LowStock, adminOnly)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create, adminOnly)
	products.PUT("/:id", productHandler.Update, adminOnly)
	products.DELETE("/:id", productHandler.Delete, adminOnly)
	products.PUT("/:id/inventory", productHandler.UpdateInventory, adminOnly)

	// --- Category routes ---
	categories := base.Group("/categories", authRequired)
	categories.GET("", categoryHandler.List)
	categories.GET("/:id", categoryHandler.Get)
	categories.POST("", categoryHandler.Create, adminOnly)
	categories.PUT("/:id", categoryHandler.Update, adminOnly)
	categories.DELETE("/:id", categoryHandler.Delete, adminOnly)

	// --- Order routes ---
	orders := base.Group("/orders", authRequired)
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.PUT("/:id/status", orderHandler.UpdateStatus, adminOnly)
	orders.DELETE("/:id", orderHandler.Delete, adminOnly)

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(cfg.Mongo, cfg.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
