package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/camate/camate-api/internal/config"
	"github.com/camate/camate-api/internal/repository/postgres"
	"github.com/camate/camate-api/internal/service"
	"github.com/camate/camate-api/internal/tenant"
	"github.com/camate/camate-api/internal/worker"
	"github.com/camate/camate-api/pkg/logger"
	"github.com/camate/camate-api/pkg/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	cfg, err := config.Load()
	if err != nil {
		appLogger.Fatal("Failed to load config", err)
	}

	masterDB, err := config.NewMasterDatabase()
	if err != nil {
		appLogger.Fatal("Failed to connect to master database", err)
	}
	defer config.CloseDatabase(masterDB)

	registry := tenant.NewConnectionRegistry(config.MasterDatabaseConfig(), nil, appLogger)
	router, err := tenant.NewRouter(masterDB, registry, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to build database router", err)
	}

	repo := postgres.NewPostgresRepository(router)

	// Same warm-load primitive the API uses at startup; the sweep fans out
	// over exactly the connections it registers here.
	if !cfg.SingleDatabaseMode {
		if err := registry.WarmLoad(context.Background(), repo.Firm()); err != nil {
			appLogger.Fatal("Failed to warm-load tenant connections", err)
		}
	}

	r2Config := config.DefaultR2Config()
	r2Client, err := r2Config.GetClient(context.Background())
	if err != nil {
		appLogger.Fatal("Failed to create R2 client", err)
	}
	r2Storage := storage.NewR2Storage(r2Client, r2Config.BucketName)

	cleanupService := service.NewCleanupService(repo, r2Storage, appLogger)

	interval := 24 * time.Hour
	if v := os.Getenv("CLEANUP_INTERVAL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			interval = parsed
		}
	}

	cleanupWorker := worker.NewCleanupWorker(cleanupService, appLogger, interval)
	cleanupWorker.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	cleanupWorker.Stop()
	appLogger.Sync()
}
