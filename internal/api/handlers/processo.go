package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nexconsult/juris-api/internal/cnj"
	"github.com/nexconsult/juris-api/internal/models"
	"github.com/nexconsult/juris-api/internal/services"
	"github.com/nexconsult/juris-api/internal/tribunal"
	"github.com/sirupsen/logrus"
)

// DataJudBatcher runs many DataJud lookups; worker.Pool satisfies it
type DataJudBatcher interface {
	ProcessBatch(ctx context.Context, inputs []string) models.DataJudBatchResponse
}

// ProcessoHandler handles CNJ case number requests
type ProcessoHandler struct {
	validation services.ValidationServiceInterface
	datajud    services.DataJudServiceInterface
	batcher    DataJudBatcher
	metrics    services.MetricsServiceInterface
	maxBatch   int
	logger     *logrus.Logger
}

// NewProcessoHandler creates a new case number handler
func NewProcessoHandler(container *services.Container, maxBatch int, logger *logrus.Logger) *ProcessoHandler {
	return &ProcessoHandler{
		validation: container.ValidationService,
		datajud:    container.DataJudService,
		batcher:    container.WorkerPool,
		metrics:    container.MetricsService,
		maxBatch:   maxBatch,
		logger:     logger,
	}
}

// GetCaseNumber handles case number parsing
// @Summary Parse a CNJ case number
// @Description Split a case number into its segments and resolve the court it belongs to
// @Tags Processos
// @Produce json
// @Param numero path string true "Case number, masked or 20 digits" example(00008323520184013202)
// @Success 200 {object} models.CaseNumberResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Router /processos/{numero} [get]
func (h *ProcessoHandler) GetCaseNumber(c *gin.Context) {
	requestID := c.GetString("request_id")
	numero := c.Param("numero")

	lookup, err := h.validation.ParseCaseNumber(numero)
	if err != nil {
		h.respondParseError(c, numero, err)
		return
	}

	response := models.NewCaseNumberResponse(lookup.Case)
	if lookup.Court != nil {
		court := models.NewTribunalResponse(*lookup.Court)
		response.Court = &court
	}

	h.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"numero":     response.Canonical,
		"resolved":   lookup.Court != nil,
	}).Debug("Case number parsed")

	c.JSON(http.StatusOK, response)
}

// GetDataJud handles DataJud lookups
// @Summary Look a case up on DataJud
// @Description Query the DataJud public API index of the court the case number resolves to
// @Tags Processos
// @Produce json
// @Param numero path string true "Case number, masked or 20 digits" example(00008323520184013202)
// @Success 200 {object} models.DataJudResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Failure 504 {object} models.ErrorResponse
// @Router /processos/{numero}/datajud [get]
func (h *ProcessoHandler) GetDataJud(c *gin.Context) {
	requestID := c.GetString("request_id")
	numero := c.Param("numero")

	if !h.datajud.Enabled() {
		respondError(c, http.StatusServiceUnavailable, "DataJud unavailable",
			"DataJud lookups are not configured on this server", "DATAJUD_DISABLED")
		return
	}

	caseNumber, err := cnj.Parse(numero)
	if err != nil {
		h.respondParseError(c, numero, err)
		return
	}

	result, err := h.datajud.Search(c.Request.Context(), caseNumber)
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"numero":     caseNumber.String(),
			"error":      err.Error(),
		}).Warn("DataJud lookup failed")

		switch {
		case errors.Is(err, tribunal.ErrNotFound):
			respondError(c, http.StatusNotFound, "Tribunal not found",
				"No tribunal registered for "+tribunal.KeyOf(caseNumber).String(), "TRIBUNAL_NOT_FOUND")
		case errors.Is(err, services.ErrNoEndpoint):
			respondError(c, http.StatusUnprocessableEntity, "Tribunal not on DataJud",
				err.Error(), "NO_DATAJUD_ENDPOINT")
		case errors.Is(err, services.ErrDataJudDisabled):
			respondError(c, http.StatusServiceUnavailable, "DataJud unavailable",
				"DataJud lookups are not configured on this server", "DATAJUD_DISABLED")
		case errors.Is(err, context.DeadlineExceeded):
			respondError(c, http.StatusGatewayTimeout, "Request timeout",
				"DataJud took too long to answer. Please try again later", "TIMEOUT")
		case errors.Is(err, services.ErrUpstream):
			respondError(c, http.StatusBadGateway, "DataJud error", err.Error(), "UPSTREAM_ERROR")
		default:
			respondError(c, http.StatusInternalServerError, "Internal server error",
				"An unexpected error occurred while processing your request", "INTERNAL_ERROR")
		}
		return
	}

	h.metrics.RecordCacheHit(c.Request.Context(), result.Cache)
	if result.Cache {
		c.Header("X-Cache", "HIT")
	} else {
		c.Header("X-Cache", "MISS")
	}
	c.Header("Cache-Control", "public, max-age=3600")

	c.JSON(http.StatusOK, result)
}

// GetDataJudBatch handles bulk DataJud lookups
// @Summary Look many cases up on DataJud
// @Description Query DataJud for a list of case numbers; results keep the request order
// @Tags Processos
// @Accept json
// @Produce json
// @Param request body models.DataJudBatchRequest true "Case numbers to look up"
// @Success 200 {object} models.DataJudBatchResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 413 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /processos/datajud/lote [post]
func (h *ProcessoHandler) GetDataJudBatch(c *gin.Context) {
	requestID := c.GetString("request_id")

	if !h.datajud.Enabled() {
		respondError(c, http.StatusServiceUnavailable, "DataJud unavailable",
			"DataJud lookups are not configured on this server", "DATAJUD_DISABLED")
		return
	}

	var request models.DataJudBatchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request format", err.Error(), "INVALID_REQUEST")
		return
	}

	if len(request.CaseNumbers) > h.maxBatch {
		respondError(c, http.StatusRequestEntityTooLarge, "Batch too large",
			fmt.Sprintf("%d case numbers, max %d", len(request.CaseNumbers), h.maxBatch), "BATCH_TOO_LARGE")
		return
	}

	response := h.batcher.ProcessBatch(c.Request.Context(), request.CaseNumbers)
	for _, item := range response.Results {
		if item.Data != nil {
			h.metrics.RecordCacheHit(c.Request.Context(), item.Data.Cache)
		}
	}

	h.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"total":      response.Total,
		"success":    response.Success,
		"cached":     response.Cached,
		"errors":     response.Errors,
		"duration":   response.DurationMs,
	}).Info("DataJud batch completed")

	c.JSON(http.StatusOK, response)
}

func (h *ProcessoHandler) respondParseError(c *gin.Context, numero string, err error) {
	h.logger.WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"numero":     numero,
		"error":      err.Error(),
	}).Warn("Invalid case number")

	if errors.Is(err, cnj.ErrWrongLength) {
		respondError(c, http.StatusBadRequest, "Invalid case number",
			"Case number must contain exactly 20 digits", "WRONG_LENGTH")
		return
	}
	respondError(c, http.StatusBadRequest, "Invalid case number", err.Error(), "INVALID_CASE_NUMBER")
}
