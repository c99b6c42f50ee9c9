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

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/adapter/classifier"
	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/adapter/client"
	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/adapter/http/router"
	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/adapter/repository/gormrepo"
	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/domain/repository"
	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/domain/service"
	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/infrastructure/cache"
	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/infrastructure/config"
	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/infrastructure/database"
	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/infrastructure/logger"
	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Initialize classifier; a missing or corrupt model aborts startup
	textClassifier, readiness, modelID, err := newClassifier(&cfg.Model)
	if err != nil {
		log.Error("Failed to initialize classifier", zap.Error(err))
		return fmt.Errorf("failed to initialize classifier: %w", err)
	}
	log.Info("Classifier initialized",
		zap.String("backend", cfg.Model.Backend),
		zap.String("model_path", cfg.Model.Path),
		zap.String("model_id", modelID),
	)

	// Initialize Redis (optional, continue without it)
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			log.Warn("Failed to connect to Redis, continuing without it", zap.Error(err))
			redisClient = nil
		} else {
			log.Info("Connected to Redis", zap.String("address", cfg.Redis.Addr()))
		}
	}

	predictionCache := newPredictionCache(&cfg.Cache, &cfg.Redis, redisClient, modelID)

	// Initialize database (optional)
	var db *gorm.DB
	var predictionRepo repository.PredictionRepository
	if cfg.Database.Enabled() {
		db, err = database.NewDB(&cfg.Database)
		if err != nil {
			log.Error("Failed to connect to database", zap.Error(err))
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		log.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

		// Run migrations
		if err := database.AutoMigrate(db); err != nil {
			log.Error("Failed to run migrations", zap.Error(err))
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Info("Database migrations completed")

		predictionRepo = gormrepo.NewPredictionRepository(db)
	}

	// Initialize usecase
	predictionUC := usecase.NewPredictionUsecase(textClassifier, predictionCache, predictionRepo, log)

	// Setup router
	r := router.Setup(router.Dependencies{
		PredictionUC: predictionUC,
		DB:           db,
		Redis:        redisClient,
		Readiness:    readiness,
		AllowOrigins: cfg.CORS.AllowOrigins,
		Logger:       log,
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server", zap.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal or a listener failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case <-quit:
		log.Info("Shutting down server...")
	case err := <-serverErr:
		log.Error("Server failed", zap.Error(err))
		runErr = fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	// Close database connection
	if db != nil {
		_ = database.Close(db)
	}

	// Close Redis connection
	if redisClient != nil {
		_ = redisClient.Close()
	}

	log.Info("Server exited")
	return runErr
}

// newClassifier builds the configured classifier and returns the identity of
// its model. The readiness checker is nil for the in-process backend.
func newClassifier(cfg *config.ModelConfig) (service.Classifier, service.ReadinessChecker, string, error) {
	switch cfg.Backend {
	case config.BackendRemote:
		remote := client.NewMLClassifier(client.NewMLClient(cfg.RemoteURL, cfg.Timeout))
		return remote, remote, remote.ModelID(), nil
	default:
		local, err := classifier.NewLocalClassifier(cfg.Path)
		if err != nil {
			return nil, nil, "", err
		}
		return local, nil, local.ModelID(), nil
	}
}

// newPredictionCache layers the in-process LRU over Redis, namespaced by
// modelID. It returns nil when neither is available.
func newPredictionCache(cacheCfg *config.CacheConfig, redisCfg *config.RedisConfig, redisClient *redis.Client, modelID string) repository.PredictionCache {
	var layers []cache.Cache
	if cacheCfg.Enabled {
		layers = append(layers, cache.NewMemoryCache(cacheCfg.Size, cacheCfg.TTL))
	}
	if redisClient != nil {
		layers = append(layers, cache.NewRedisCache(redisClient, redisCfg.TTL))
	}
	if len(layers) == 0 {
		return nil
	}
	return cache.NewPredictionCache(cache.NewLayeredCache(layers...), cache.Namespace(modelID))
}
