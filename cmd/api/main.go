package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eshop-platform/eshop-api/internal/api"
	"github.com/eshop-platform/eshop-api/internal/core/service"
	"github.com/eshop-platform/eshop-api/internal/infrastructure/config"
	"github.com/eshop-platform/eshop-api/internal/infrastructure/db/mongo"
	"github.com/eshop-platform/eshop-api/internal/infrastructure/db/redis"
	"github.com/eshop-platform/eshop-api/internal/infrastructure/queue"
	"github.com/eshop-platform/eshop-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        eShop API
// @version      1.0
// @description  REST API for the eShop catalog, orders and inventory.
// @BasePath     /api/v1
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Repositories ---
	userRepo := mongo.NewAuthRepository(db)
	productRepo := mongo.NewProductRepository(db)
	categoryRepo := mongo.NewCategoryRepository(db)
	orderRepo := mongo.NewOrderRepository(db)
	alertRepo := mongo.NewAlertRepository(db)

	// --- Services ---
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService)

	alertService := service.NewAlertService(alertRepo, redis.NewAlertDedup(rdb), log)
	dispatcher := queue.NewDispatcher(0, alertService, log)
	dispatcher.Start(ctx)

	productCache := redis.NewProductCache(rdb, log)
	productService := service.NewProductService(productRepo, productCache, dispatcher, cfg.LowStockThreshold, log)
	categoryService := service.NewCategoryService(categoryRepo, log)
	orderService := service.NewOrderService(orderRepo, productRepo, log)

	// --- HTTP server ---
	e := api.NewRouter(api.RouterConfig{
		BasePath:   cfg.APIBasePath,
		Tokens:     tokenService,
		Auth:       authService,
		Products:   productService,
		Categories: categoryService,
		Orders:     orderService,
		Mongo:      db,
		Redis:      rdb,
		Logger:     log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped unexpectedly")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
	log.Info().Msg("server stopped")
}
