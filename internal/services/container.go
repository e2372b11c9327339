package services

import (
	"context"
	"fmt"
	"time"

	"github.com/nexconsult/juris-api/internal/cnj"
	"github.com/nexconsult/juris-api/internal/config"
	"github.com/nexconsult/juris-api/internal/models"
	"github.com/nexconsult/juris-api/internal/tribunal"
	"github.com/nexconsult/juris-api/internal/worker"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// workerQueueSize bounds the jobs waiting for a DataJud worker
const workerQueueSize = 1000

// Container holds all service dependencies
type Container struct {
	config      *config.Config
	logger      *logrus.Logger
	redisClient *redis.Client
	cancel      context.CancelFunc

	Router            *tribunal.Router
	CacheService      CacheServiceInterface
	ValidationService ValidationServiceInterface
	DataJudService    DataJudServiceInterface
	MetricsService    MetricsServiceInterface
	WorkerPool        *worker.Pool

	metrics *MetricsService
}

// NewContainer creates a new service container
func NewContainer(cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	container := &Container{
		config: cfg,
		logger: logger,
	}

	container.initRedis()

	if err := container.initRouter(); err != nil {
		return nil, fmt.Errorf("failed to initialize tribunal table: %w", err)
	}

	if err := container.initServices(); err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}
	return container, nil
}

// initRedis initializes Redis client; the cache falls back to memory without it
func (c *Container) initRedis() {
	if !c.config.Redis.Enabled {
		c.logger.Info("Redis disabled, using memory cache")
		return
	}

	c.redisClient = redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", c.config.Redis.Host, c.config.Redis.Port),
		Password:     c.config.Redis.Password,
		DB:           c.config.Redis.DB,
		PoolSize:     c.config.Redis.PoolSize,
		DialTimeout:  c.config.Redis.DialTimeout,
		ReadTimeout:  c.config.Redis.ReadTimeout,
		WriteTimeout: c.config.Redis.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), c.config.Redis.DialTimeout)
	defer cancel()

	if err := c.redisClient.Ping(ctx).Err(); err != nil {
		c.logger.WithError(err).Warn("Redis connection failed, running with memory cache")
		_ = c.redisClient.Close()
		c.redisClient = nil
		return
	}

	c.logger.Info("Redis connection established")
}

// initRouter populates the court table. It runs before any handler exists,
// so the router is read-only once the server starts.
func (c *Container) initRouter() error {
	c.Router = tribunal.NewDefault()

	if path := c.config.Tribunal.TablePath; path != "" {
		n, err := c.Router.LoadFile(path, c.config.Tribunal.Overwrite)
		if err != nil {
			return err
		}
		c.logger.WithFields(logrus.Fields{
			"path":    path,
			"entries": n,
		}).Info("Tribunal table extended from file")
	}

	c.logger.WithField("tribunals", c.Router.Len()).Info("Tribunal table ready")
	return nil
}

// initServices initializes all services
func (c *Container) initServices() error {
	metrics, err := NewMetricsService()
	if err != nil {
		return err
	}
	c.metrics = metrics
	c.MetricsService = metrics

	cache := NewCacheService(c.redisClient, c.config.DataJud.CacheTTL, c.logger)

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	cache.StartCleanupRoutine(ctx, 5*time.Minute)

	c.CacheService = cache
	c.ValidationService = NewValidationService(c.Router, c.config.Security.MaxBatch, c.logger)
	c.DataJudService = NewDataJudClient(c.config.DataJud, c.Router, c.CacheService, c.logger)

	// Resolve DataJudService per call so it can be swapped after construction
	searcher := worker.SearchFunc(func(ctx context.Context, number cnj.CaseNumber) (*models.DataJudResponse, error) {
		return c.DataJudService.Search(ctx, number)
	})
	c.WorkerPool = worker.NewPool(c.config.DataJud.Workers, workerQueueSize, searcher, metrics.Meter(), c.logger)
	c.WorkerPool.Start()
	return nil
}

// Close closes all service connections
func (c *Container) Close() error {
	if c.cancel != nil {
		c.cancel()
	}
	if c.WorkerPool != nil {
		c.WorkerPool.Stop()
	}
	if c.metrics != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.metrics.Shutdown(ctx); err != nil {
			c.logger.WithError(err).Warn("Failed to shut down metrics provider")
		}
	}

	if c.redisClient != nil {
		if err := c.redisClient.Close(); err != nil {
			return fmt.Errorf("failed to close Redis: %w", err)
		}
	}

	return nil
}

// Health checks the health of all services
func (c *Container) Health() map[string]interface{} {
	health := make(map[string]interface{})

	if c.CacheService != nil {
		health["cache"] = c.CacheService.Health()
	}
	if c.ValidationService != nil {
		health["validation"] = c.ValidationService.Health()
	}
	if c.DataJudService != nil {
		health["datajud"] = c.DataJudService.Health()
	}
	if c.WorkerPool != nil {
		stats := c.WorkerPool.GetStats()
		health["workers"] = map[string]interface{}{
			"status":         "healthy",
			"workers":        stats.Workers,
			"active_workers": stats.ActiveWorkers,
			"queue_size":     stats.QueueSize,
		}
	}

	return health
}
