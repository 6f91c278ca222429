package main

import (
	"context"   // context package is needed for Redis operations
	"errors"    // Error inspection
	"net/http"  // HTTP server
	"os"        // Signal handling
	"os/signal" // Signal handling
	"syscall"   // Signal numbers
	"time"      // Server timeouts

	"soulid/internal/api"         // Custom package for API handlers
	"soulid/internal/config"      // Custom package for configuration
	"soulid/internal/db"          // Database connection and schema
	"soulid/internal/events"      // Token events
	"soulid/internal/sandbox"     // Flat-file sandbox store
	"soulid/internal/storage"     // Image uploads
	"soulid/internal/suggestions" // Opportunity catalog

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// @title        SoulID API
// @version      1.0
// @description  Profiles, credential tokens and public verification.
// @BasePath     /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		gin.SetMode(gin.ReleaseMode) // Set Mode to Release if in production
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	if cfg.JWTSecret == "" {
		logrus.Warn("JWT_SECRET is empty, session login is disabled")
	}

	// Connect to the database and bring the schema up to date
	conn, err := db.Open(cfg.DBDriver, cfg.DSN())
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}
	if err := db.Migrate(conn); err != nil {
		logrus.Fatalf("failed to migrate DB: %v", err)
	}

	// Setup Redis client; caching is skipped when no address is configured
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection; an unreachable cache only degrades reads
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logrus.WithError(err).Warn("Redis is unreachable, continuing without cache hits")
		}
		defer redisClient.Close()
	}

	// Image storage backend
	var uploader storage.Uploader
	uploadDir := ""
	switch cfg.StorageDriver {
	case "s3":
		uploader, err = storage.NewS3Uploader(cfg.S3)
	default:
		uploadDir = cfg.UploadDir
		uploader, err = storage.NewLocalUploader(cfg.UploadDir, "/uploads")
	}
	if err != nil {
		logrus.Fatalf("failed to set up %s storage: %v", cfg.StorageDriver, err)
	}

	// Token events go nowhere unless a broker is configured
	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.AMQPURL != "" {
		rabbit, err := events.DialRabbitmq(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			logrus.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer rabbit.Close()
		publisher = rabbit
	}

	catalog, err := suggestions.Load()
	if err != nil {
		logrus.Fatalf("failed to load suggestion catalog: %v", err)
	}

	router := api.NewRouter(api.Deps{
		DB:            conn,
		Redis:         redisClient,
		Uploader:      uploader,
		UploadDir:     uploadDir,
		Publisher:     publisher,
		Sandbox:       sandbox.NewStore(cfg.SandboxStorePath),
		Catalog:       catalog,
		JWTSecret:     cfg.JWTSecret,
		PublicBaseURL: cfg.PublicBaseURL,
	})
	// Set trusted proxies for Gin
	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           api.WithCORS(router, cfg.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	go func() {
		logrus.Info("Server running on " + cfg.AppPort) // Log server start
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server error: %v", err)
		}
	}()

	// Wait for an interrupt and drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Graceful shutdown failed")
	}
}
