// cmd/byte-aes-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/xmh0511/byte-aes/internal/api/rest/v1"
	"github.com/xmh0511/byte-aes/internal/app"
	"github.com/xmh0511/byte-aes/internal/domain/blobs"
	"github.com/xmh0511/byte-aes/internal/domain/crypto"
	"github.com/xmh0511/byte-aes/internal/infrastructure/cryptography"
	"github.com/xmh0511/byte-aes/internal/infrastructure/persistence"
	"github.com/xmh0511/byte-aes/internal/pkg/config"
	"github.com/xmh0511/byte-aes/internal/pkg/keymaterial"
	"github.com/xmh0511/byte-aes/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Warn("Failed to close database: ", err)
		}
	}()

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db       *gorm.DB
	cryptor  crypto.BlockCryptor
	services *appServices
}

type appServices struct {
	blobSeal     blobs.BlobSealService
	blobOpen     blobs.BlobOpenService
	blobMetadata blobs.BlobMetadataService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	cryptor, err := initializeCryptor(&cfg.Cryptor, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cryptor: %w", err)
	}

	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.Migrate(db); err != nil {
		return nil, err
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	blobRepo, err := persistence.NewGormBlobRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob repository: %w", err)
	}

	// Initialize services
	services, err := initializeApplicationServices(blobRepo, cryptor, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		db:       db,
		cryptor:  cryptor,
		services: services,
	}, nil
}

// initializeCryptor resolves the key material and builds the AES-256 block cryptor
func initializeCryptor(settings *config.CryptorSettings, log logger.Logger) (crypto.BlockCryptor, error) {
	material, err := keymaterial.Resolve(settings)
	if err != nil {
		return nil, err
	}

	key, err := crypto.NewKey(material)
	if err != nil {
		return nil, err
	}

	cryptor, err := cryptography.NewAES256Cryptor(key, log, settings.Options())
	if err != nil {
		return nil, err
	}

	log.Info("AES-256 cryptor initialized from key source ", settings.KeySource)
	return cryptor, nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(blobRepo blobs.BlobRepository, cryptor crypto.BlockCryptor, log logger.Logger) (*appServices, error) {
	blobSealService, err := app.NewBlobSealService(blobRepo, cryptor, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob seal service: %w", err)
	}

	blobOpenService, err := app.NewBlobOpenService(blobRepo, cryptor, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob open service: %w", err)
	}

	blobMetadataService, err := app.NewBlobMetadataService(blobRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob metadata service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		blobSeal:     blobSealService,
		blobOpen:     blobOpenService,
		blobMetadata: blobMetadataService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r,
		deps.cryptor,
		deps.services.blobSeal,
		deps.services.blobOpen,
		deps.services.blobMetadata,
		log,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
