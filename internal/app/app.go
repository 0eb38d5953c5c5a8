package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"immo-media/internal/repo/cache"
	"immo-media/internal/repo/persistent"
	"immo-media/internal/usecase"
	"immo-media/pkg/campay"
	redisCache "immo-media/pkg/cache"
	"immo-media/pkg/config"
	"immo-media/pkg/database"
	"immo-media/pkg/logger"
	"immo-media/pkg/minio"
	"immo-media/pkg/queue"
	"immo-media/pkg/s3"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	store       usecase.MediaStore
	queueClient *queue.Client
	provider    *campay.Client
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log, err := logger.NewWithLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := redisCache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Failed to connect to redis: %v (continuing without media cache)", err)
		redisClient = nil
	}

	store, err := newMediaStore(cfg)
	if err != nil {
		log.Error("Failed to create media store: %v", err)
		(&App{log: log, db: db, redisClient: redisClient}).closeConnections()
		return nil, err
	}
	log.Info("Media store ready (driver=%s, bucket=%s)", cfg.StorageDriver, cfg.S3BucketName)

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("Failed to connect to RabbitMQ: %v (continuing without events)", err)
		queueClient = nil
	}

	if cfg.CampayAccessToken == "" {
		log.Warn("CAMPAY_ACCESS_TOKEN is empty, payment calls will be rejected by Campay")
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		store:       store,
		queueClient: queueClient,
		provider:    campay.NewClient(cfg),
	}, nil
}

func newMediaStore(cfg *config.Config) (usecase.MediaStore, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverMinio:
		store, err := minio.NewStore(cfg)
		if err != nil {
			return nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := store.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return store, nil
	case config.StorageDriverS3:
		return s3.NewClient(cfg)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func (a *App) Run() error {
	deps := Dependencies{
		MediaRepo:       persistent.NewMediaRepository(a.db),
		TransactionRepo: persistent.NewTransactionRepository(a.db),
		Store:           a.store,
		Provider:        a.provider,
	}
	if a.redisClient != nil {
		deps.ListCache = cache.NewMediaListCache(a.redisClient, a.cfg.MediaCacheTTL)
	}
	// a nil *queue.Client must not end up inside a non-nil interface
	if a.queueClient != nil {
		deps.Events = a.queueClient
	}

	a.httpServer = &http.Server{
		Addr:              ":" + a.cfg.ServerPort,
		Handler:           NewRouter(a.cfg, a.log, deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		a.log.Info("Media service starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down media service...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// stop accepting requests before closing what they depend on
	var shutdownErr error
	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			a.log.Error("Server forced to shutdown: %v", err)
			shutdownErr = err
		}
	}

	a.closeConnections()

	a.log.Info("Media service exited")
	_ = a.log.Sync()
	return shutdownErr
}

// closeConnections releases whichever backing connections were opened.
func (a *App) closeConnections() {
	if err := database.Close(a.db); err != nil {
		a.log.Error("Error closing database: %v", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
	}
}
