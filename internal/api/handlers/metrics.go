package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nexconsult/juris-api/internal/models"
	"github.com/nexconsult/juris-api/internal/services"
	"github.com/sirupsen/logrus"
)

// StatsProvider is anything that reports its own statistics, such as the
// rate limiter
type StatsProvider interface {
	GetStats() map[string]interface{}
}

// MetricsHandler handles metrics requests
type MetricsHandler struct {
	metrics    services.MetricsServiceInterface
	cache      services.CacheServiceInterface
	validation services.ValidationServiceInterface
	rateLimit  StatsProvider
	logger     *logrus.Logger
}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler(container *services.Container, rateLimit StatsProvider, logger *logrus.Logger) *MetricsHandler {
	return &MetricsHandler{
		metrics:    container.MetricsService,
		cache:      container.CacheService,
		validation: container.ValidationService,
		rateLimit:  rateLimit,
		logger:     logger,
	}
}

// GetPrometheus serves the instruments in the Prometheus exposition format
// @Summary Prometheus metrics
// @Description Request, cache and worker pool instruments for scraping
// @Tags Metrics
// @Produce plain
// @Success 200 {string} string
// @Router /metrics [get]
func (h *MetricsHandler) GetPrometheus(c *gin.Context) {
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

// GetMetrics handles metrics request
// @Summary Get application metrics
// @Description Get request counters, cache and rate limiter statistics
// @Tags Metrics
// @Produce json
// @Success 200 {object} models.MetricsResponse
// @Router /metrics/summary [get]
func (h *MetricsHandler) GetMetrics(c *gin.Context) {
	requestID := c.GetString("request_id")

	h.logger.WithField("request_id", requestID).Debug("Getting application metrics")

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	counters := h.metrics.GetMetrics()

	cacheStats, err := h.cache.GetStats(c.Request.Context())
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to get cache statistics")
		cacheStats = map[string]interface{}{"error": err.Error()}
	}
	cacheStats["lookups_hit"] = counters["cache_hits"]
	cacheStats["lookups_miss"] = counters["cache_misses"]

	response := models.MetricsResponse{
		Requests: models.RequestsMetrics{
			Total:       getInt64FromStats(counters, "total"),
			Success:     getInt64FromStats(counters, "success"),
			Errors:      getInt64FromStats(counters, "errors"),
			SuccessRate: getFloatFromStats(counters, "success_rate"),
		},
		Cache:     cacheStats,
		Tribunals: len(h.validation.Tribunals()),
		System: models.SystemMetrics{
			MemoryUsage: float64(m.Alloc) / 1024 / 1024,
			Goroutines:  runtime.NumGoroutine(),
		},
		Timestamp: time.Now(),
	}

	if h.rateLimit != nil {
		response.RateLimit = h.rateLimit.GetStats()
	}

	c.JSON(http.StatusOK, response)
}

// Helper functions to safely read values from stats maps
func getInt64FromStats(stats map[string]interface{}, key string) int64 {
	if value, ok := stats[key].(int64); ok {
		return value
	}
	return 0
}

func getFloatFromStats(stats map[string]interface{}, key string) float64 {
	if value, ok := stats[key].(float64); ok {
		return value
	}
	return 0
}
