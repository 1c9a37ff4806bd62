package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pantryops/shoplist/internal/bootstrap"
	"github.com/pantryops/shoplist/internal/config"
	"github.com/pantryops/shoplist/internal/database"
	"github.com/pantryops/shoplist/internal/extract"
	"github.com/pantryops/shoplist/internal/inventory"
	"github.com/pantryops/shoplist/internal/mealplan"
	"github.com/pantryops/shoplist/internal/recipe"
	"github.com/pantryops/shoplist/internal/server"
	"github.com/pantryops/shoplist/internal/shopping"
)

// Database pool settings
const (
	dbMaxConnections    = 10
	dbMaxConnIdleTime   = 5 * time.Minute
	dbMaxConnLifetime   = 30 * time.Minute
	shutdownGracePeriod = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application failed: %v", err)
	}
}

func run() error {
	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := config.ValidateEnv(); err != nil {
		return err
	}

	// Setup logging (stdout + session log file)
	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	// Connect to database
	dbPool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConnections, dbMaxConnIdleTime, dbMaxConnLifetime)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	// Initialize repositories and services
	repos := bootstrap.InitializeRepositories(dbPool)

	fetcher := extract.NewFetcher(cfg.ScrapeTimeout)
	recipeService := recipe.NewService(repos.Recipe, fetcher)
	inventoryService := inventory.NewService(repos.Inventory)
	mealPlanService := mealplan.NewService(repos.MealPlan, repos.Recipe, repos.Inventory)
	shoppingService := shopping.NewService(repos.MealPlan, repos.Recipe, repos.Inventory)

	// Create and start HTTP server
	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies,
		dbPool, recipeService, inventoryService, mealPlanService, shoppingService)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	// Wait for shutdown signal or server failure
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case sig := <-stop:
		slog.Info("Received shutdown signal", "signal", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{Server: srv})
	return nil
}
