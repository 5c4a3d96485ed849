package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ovees/eleganza-backend/api/routes"
	"github.com/ovees/eleganza-backend/internal/cart"
	"github.com/ovees/eleganza-backend/internal/catalog"
	"github.com/ovees/eleganza-backend/internal/checkout"
	"github.com/ovees/eleganza-backend/internal/orders"
	"github.com/ovees/eleganza-backend/internal/reorder"
	"github.com/ovees/eleganza-backend/pkg/config"
	"github.com/ovees/eleganza-backend/pkg/db"
	"github.com/ovees/eleganza-backend/pkg/logger"
	"github.com/ovees/eleganza-backend/pkg/metrics"
	"github.com/ovees/eleganza-backend/pkg/migrate"
	"github.com/ovees/eleganza-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	catalogClient, err := catalog.NewClient(cfg.Catalog.BaseURL, catalog.WithTimeout(cfg.Catalog.Timeout))
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog client", err)
		os.Exit(1)
	}

	cartService := cart.NewService(cart.NewRedisStore(redisClient, cfg.Cart.TTL), logg)
	ordersService := orders.NewService(orders.NewRepo(dbClient.DB()), logg)
	checkoutService := checkout.NewService(cartService, ordersService, cfg.Checkout.WhatsAppNumber, logg)
	reorderService := reorder.NewService(
		reorder.NewRedisSlot(redisClient, cfg.Cart.PendingReorderTTL),
		ordersService,
		cartService,
		logg,
	)

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:   cfg,
			Logger:   logg,
			DB:       dbClient,
			Cache:    redisClient,
			Catalog:  catalogClient,
			Cart:     cartService,
			Hydrator: reorderService,
			Checkout: checkoutService,
			Orders:   ordersService,
			Reorder:  reorderService,
			Metrics:  httpMetrics,
			Registry: registry,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
