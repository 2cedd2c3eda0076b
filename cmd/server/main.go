package main

import (
	"context"
	"log"
	"net/http"
	"time"

	webAdapter "warehouse-server/internal/adapters/web"
	"warehouse-server/internal/app"
	"warehouse-server/internal/config"
	"warehouse-server/internal/core"
	"warehouse-server/internal/db"
	"warehouse-server/internal/distcenter"
	"warehouse-server/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	var itemStore core.ItemStore
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		cancel()
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		defer pool.Close()
		itemStore = store.NewPostgresStore(pool)
	} else {
		log.Println("DATABASE_URL not set; using in-memory warehouse store")
		itemStore = store.NewMemoryStore()
	}

	warehouse := core.Coordinate{
		Latitude:  cfg.WarehouseLatitude,
		Longitude: cfg.WarehouseLongitude,
	}
	gateway := distcenter.NewClient(cfg.DistributionAPIURL, cfg.APIUsername, cfg.APIPassword, warehouse, cfg.APITimeout)

	reconciler := core.NewStockReconciler(itemStore)
	replenisher := core.NewReplenishmentService(gateway, reconciler)
	catalog := core.NewCatalogService(gateway)

	svc := app.NewAppService(gateway, replenisher, catalog)
	handler := webAdapter.NewHandler(svc, cfg.AllowedOrigins)

	log.Printf("warehouse at (%.4f, %.4f), distribution API %s", cfg.WarehouseLatitude, cfg.WarehouseLongitude, cfg.DistributionAPIURL)
	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := http.ListenAndServe(":"+cfg.ServerPort, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
