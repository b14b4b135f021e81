// cmd/storefront/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/your-org/storefront/internal/app"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/order"
	"github.com/your-org/storefront/internal/domain/product"
	"github.com/your-org/storefront/internal/domain/session"
	"github.com/your-org/storefront/internal/domain/user"
	"github.com/your-org/storefront/internal/infrastructure/database/bolt"
	"github.com/your-org/storefront/internal/infrastructure/remote"
	"github.com/your-org/storefront/internal/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg := logger.New(cfg)
	logg.Infof("Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Open the local session database
	store, err := bolt.NewConnection(cfg)
	if err != nil {
		log.Fatalf("Failed to open local database: %v", err)
	}
	defer store.Close()

	if err := store.Health(); err != nil {
		log.Fatalf("Local database health check failed: %v", err)
	}

	// Remote API clients: catalog host carries users and products, the
	// store host carries cart and order
	catalogClient := remote.NewClient(cfg.API.CatalogBaseURL, cfg.API.RequestTimeout, logg)
	storeClient := remote.NewClient(cfg.API.StoreBaseURL, cfg.API.RequestTimeout, logg)

	// Domain services
	sessions := session.NewService(store, logg)
	users := user.NewService(catalogClient, cfg, logg)
	products := product.NewService(catalogClient, logg)
	carts := cart.NewService(storeClient, logg)
	orders := order.NewService(storeClient, carts, logg)

	// Cancel the screen loop on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storefront := app.New(cfg, logg, sessions, users, products, carts, orders, os.Stdin, os.Stdout)
	if err := storefront.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("Storefront exited with error: %v", err)
	}

	logg.Info("Goodbye")
}
