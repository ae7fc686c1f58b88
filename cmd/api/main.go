package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/camate/camate-api/internal/api"
	"github.com/camate/camate-api/internal/config"
	"github.com/camate/camate-api/internal/domain"
	"github.com/camate/camate-api/internal/middleware"
	"github.com/camate/camate-api/internal/repository/postgres"
	"github.com/camate/camate-api/internal/service"
	"github.com/camate/camate-api/internal/service/queue"
	"github.com/camate/camate-api/internal/tenant"
	"github.com/camate/camate-api/pkg/logger"
	"github.com/camate/camate-api/pkg/storage"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Initialize logger
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

	// Shared schema lives in the master store.
	if err := masterDB.AutoMigrate(domain.SharedEntities()...); err != nil {
		appLogger.Fatal("Failed to migrate master schema", err)
	}
	if cfg.SingleDatabaseMode {
		// All tenant tables share the master database under this switch.
		if err := masterDB.AutoMigrate(domain.TenantEntities()...); err != nil {
			appLogger.Fatal("Failed to migrate tenant schema into master", err)
		}
	}

	appLogger.Info("Master database connection established")

	// Tenant routing core: registry + router + provisioner.
	registry := tenant.NewConnectionRegistry(config.MasterDatabaseConfig(), nil, appLogger)
	router, err := tenant.NewRouter(masterDB, registry, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to build database router", err)
	}

	repo := postgres.NewPostgresRepository(router)

	// Pre-warm the connection registry from the firm registry so steady-state
	// traffic never pays the lazy-registration cost. Cold start is tolerated.
	if !cfg.SingleDatabaseMode {
		if err := registry.WarmLoad(context.Background(), repo.Firm()); err != nil {
			appLogger.Fatal("Failed to warm-load tenant connections", err)
		}
	}

	provisioner := tenant.NewProvisioner(
		tenant.NewPostgresAdmin(masterDB),
		registry,
		nil,
		cfg.SingleDatabaseMode,
		appLogger,
	)

	// Initialize Redis
	redisConfig := config.DefaultRedisConfig()
	redisClient, err := redisConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()

	// Initialize R2 object storage
	r2Config := config.DefaultR2Config()
	r2Client, err := r2Config.GetClient(context.Background())
	if err != nil {
		appLogger.Fatal("Failed to create R2 client", err)
	}
	r2Storage := storage.NewR2Storage(r2Client, r2Config.BucketName)

	// SQS is only needed when provisioning is offloaded to the worker.
	var provisionQueue service.ProvisionQueue
	if cfg.AsyncProvisioning {
		sqsConfig := config.DefaultSQSConfig()
		sqsClient, err := sqsConfig.GetClient()
		if err != nil {
			appLogger.Fatal("Failed to connect to SQS", err)
		}
		provisionQueue = queue.NewSQSService(sqsClient, sqsConfig)
	}

	// Initialize services
	authService := service.NewAuthService(repo, provisioner, provisionQueue, cfg.AsyncProvisioning, appLogger)
	customerService := service.NewCustomerService(repo)
	uploadService := service.NewUploadService(repo, r2Storage)
	outputService := service.NewOutputService(repo, r2Storage)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(redisClient, cfg, appLogger)

	server := api.NewServer(
		authService,
		customerService,
		uploadService,
		outputService,
		authMiddleware,
		rateLimitMiddleware,
	)

	// Initialize router
	ginRouter := gin.Default()

	// Health check endpoint
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"registry": registry.State().String(),
			"tenants":  registry.Len(),
		})
	})

	apiGroup := ginRouter.Group("/api/v1")
	server.SetupRoutes(apiGroup, cfg.GlobalRateLimit)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: ginRouter,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", err)
	}

	appLogger.Info("Server exiting")
	appLogger.Sync()
}
