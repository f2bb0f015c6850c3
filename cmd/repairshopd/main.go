package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"repairshop-backend/config"
	"repairshop-backend/internal/api"
	"repairshop-backend/internal/db"
	"repairshop-backend/internal/repo"
	"repairshop-backend/internal/store"
)

func main() {
	logger := log.New(os.Stdout, "repairshop-backend ", log.LstdFlags)

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	// Backend selection happens exactly once; the handle lives for the
	// process lifetime and is injected everywhere.
	appStore, err := openStore(&cfg.Storage)
	if err != nil {
		logger.Fatalf("failed to initialize storage: %v", err)
	}
	defer appStore.Close()
	logger.Printf("data store initialized (backend: %s)", cfg.Storage.Backend)

	repos := repo.New(appStore)
	handler := api.NewHandler(repos, appStore)

	router := api.NewRouter(handler, &cfg.Server)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}

func openStore(cfg *config.StorageConfig) (store.Store, error) {
	if cfg.Backend == config.BackendBolt {
		return store.OpenBoltStore(cfg.Path)
	}
	gormDB, err := db.Open(cfg)
	if err != nil {
		return nil, err
	}
	return store.NewGormStore(gormDB), nil
}
