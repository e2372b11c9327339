package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nexconsult/juris-api/internal/cnj"
	"github.com/nexconsult/juris-api/internal/services"
	"github.com/sirupsen/logrus"
)

// CacheHandler handles cache management requests
type CacheHandler struct {
	cacheService services.CacheServiceInterface
	logger       *logrus.Logger
}

// NewCacheHandler creates a new cache handler
func NewCacheHandler(cacheService services.CacheServiceInterface, logger *logrus.Logger) *CacheHandler {
	return &CacheHandler{
		cacheService: cacheService,
		logger:       logger,
	}
}

// GetStats handles cache statistics request
// @Summary Get cache statistics
// @Description Get statistics of the DataJud result cache
// @Tags Cache
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} models.ErrorResponse
// @Router /cache/stats [get]
func (h *CacheHandler) GetStats(c *gin.Context) {
	requestID := c.GetString("request_id")

	stats, err := h.cacheService.GetStats(c.Request.Context())
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get cache statistics")

		respondError(c, http.StatusInternalServerError, "Internal server error",
			"Failed to retrieve cache statistics", "CACHE_STATS_ERROR")
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"stats":     stats,
		"timestamp": time.Now(),
		"health":    h.cacheService.Health(),
	})
}

// Clear handles cache clear request
// @Summary Clear all cache
// @Description Drop every cached DataJud result
// @Tags Cache
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} models.ErrorResponse
// @Router /cache [delete]
func (h *CacheHandler) Clear(c *gin.Context) {
	requestID := c.GetString("request_id")

	if err := h.cacheService.Clear(c.Request.Context()); err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to clear cache")

		respondError(c, http.StatusInternalServerError, "Internal server error",
			"Failed to clear cache", "CACHE_CLEAR_ERROR")
		return
	}

	h.logger.WithField("request_id", requestID).Info("Cache cleared successfully")

	c.JSON(http.StatusOK, map[string]interface{}{
		"message":   "Cache cleared successfully",
		"timestamp": time.Now(),
		"success":   true,
	})
}

// Delete handles deletion of one cached DataJud result
// @Summary Delete a case from cache
// @Description Drop the cached DataJud result of a case number
// @Tags Cache
// @Param numero path string true "Case number"
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /cache/processos/{numero} [delete]
func (h *CacheHandler) Delete(c *gin.Context) {
	requestID := c.GetString("request_id")
	numero := c.Param("numero")

	caseNumber, err := cnj.Parse(numero)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid case number",
			"Case number must contain exactly 20 digits", "WRONG_LENGTH")
		return
	}

	cacheKey := services.DataJudCacheKey(caseNumber)

	exists, err := h.cacheService.Exists(c.Request.Context(), cacheKey)
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"numero":     caseNumber.String(),
			"error":      err.Error(),
		}).Error("Failed to check cache key existence")

		respondError(c, http.StatusInternalServerError, "Internal server error",
			"Failed to check cache", "CACHE_CHECK_ERROR")
		return
	}

	if !exists {
		respondError(c, http.StatusNotFound, "Not found",
			"Case number not found in cache", "CASE_NOT_IN_CACHE")
		return
	}

	if err := h.cacheService.Delete(c.Request.Context(), cacheKey); err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"numero":     caseNumber.String(),
			"error":      err.Error(),
		}).Error("Failed to delete case from cache")

		respondError(c, http.StatusInternalServerError, "Internal server error",
			"Failed to delete from cache", "CACHE_DELETE_ERROR")
		return
	}

	h.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"numero":     caseNumber.String(),
	}).Info("Case deleted from cache")

	c.JSON(http.StatusOK, map[string]interface{}{
		"message":   "Case deleted from cache",
		"numero":    caseNumber.String(),
		"timestamp": time.Now(),
		"success":   true,
	})
}
