// @title           Project Tracker API
// @version         1.0
// @description     Kanban board API for tracking work items across sprints

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8000
// @BasePath  /api/tracker

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "project-tracker-api/docs" // Swagger docs import

	"project-tracker-api/internal/client"
	"project-tracker-api/internal/config"
	"project-tracker-api/internal/database"
	"project-tracker-api/internal/job"
	"project-tracker-api/internal/metrics"
	"project-tracker-api/internal/repository"
	"project-tracker-api/internal/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Project Tracker Service",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
		zap.String("user_api_url", cfg.UserAPI.BaseURL),
	)

	// Initialize database. Startup survives a down database, the
	// connection keeps retrying in the background.
	dbConfig := database.Config{
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	db, err := database.New(dbConfig)
	if err != nil {
		logger.Warn("Failed to connect to database on startup, will retry in background",
			zap.Error(err))
		database.NewAsync(dbConfig, 5*time.Second)
	} else {
		logger.Info("Database connected successfully")

		if err := database.SafeAutoMigrate(db, logger); err != nil {
			logger.Warn("Failed to run database migrations", zap.Error(err))
		} else {
			logger.Info("Database migrations completed")
		}
	}

	// Initialize metrics
	m := metrics.New()
	logger.Info("Metrics initialized")

	if db != nil {
		database.RegisterMetricsCallbacks(db, m)
		database.StartDBStatsCollector(db, m)

		collector := metrics.NewBusinessMetricsCollector(db, m, logger)
		collector.Start()
		defer collector.Stop()
	}

	// Initialize redis for the report cache. The cache degrades to
	// direct reads when redis is unavailable.
	if err := database.InitRedis(*cfg, logger); err != nil {
		logger.Warn("Failed to connect to redis, report caching disabled", zap.Error(err))
	}

	// Initialize user directory client for assignee resolution
	userClient := client.NewUserClient(
		cfg.UserAPI.BaseURL,
		cfg.UserAPI.Timeout,
		logger,
		m,
	)
	logger.Info("User client initialized",
		zap.String("user_api_url", cfg.UserAPI.BaseURL),
	)

	// Setup router with all dependencies
	r := router.Setup(router.Config{
		DB:          db,
		RedisClient: database.GetRedis(),
		Logger:      logger,
		JWTSecret:   cfg.JWT.Secret,
		UserClient:  userClient,
		BasePath:    cfg.Server.BasePath,
		Metrics:     m,
		CacheTTL:    cfg.Redis.TTL,
	})

	// Schedule the done-item archive job
	scheduler := cron.New()
	if db != nil {
		archiveJob := job.NewArchiveJob(
			repository.NewItemRepository(db),
			repository.NewCommentRepository(db),
			repository.NewArchiveRepository(db),
			cfg.Archive.MaxAge,
			m,
			logger,
		)
		if _, err := scheduler.AddJob(cfg.Archive.Schedule, archiveJob); err != nil {
			logger.Warn("Failed to schedule archive job", zap.Error(err))
		} else {
			scheduler.Start()
			defer scheduler.Stop()
			logger.Info("Archive job scheduled",
				zap.String("schedule", cfg.Archive.Schedule),
				zap.Duration("max_age", cfg.Archive.MaxAge),
			)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Project Tracker Service started successfully",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%s%s/swagger/index.html", cfg.Server.Port, cfg.Server.BasePath)),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
