package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/camate/camate-api/internal/config"
	"github.com/camate/camate-api/internal/service/queue"
	"github.com/camate/camate-api/internal/tenant"
	"github.com/camate/camate-api/internal/worker"
	"github.com/camate/camate-api/pkg/logger"
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
	provisioner := tenant.NewProvisioner(
		tenant.NewPostgresAdmin(masterDB),
		registry,
		nil,
		cfg.SingleDatabaseMode,
		appLogger,
	)

	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	provisionWorker := worker.NewProvisionWorker(sqsService, provisioner, appLogger, 2, 5*time.Second)
	provisionWorker.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	provisionWorker.Stop()
	appLogger.Sync()
}
