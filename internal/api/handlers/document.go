package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nexconsult/juris-api/internal/document"
	"github.com/nexconsult/juris-api/internal/models"
	"github.com/nexconsult/juris-api/internal/services"
	"github.com/sirupsen/logrus"
)

// DocumentHandler handles CPF and CNPJ validation requests
type DocumentHandler struct {
	validation services.ValidationServiceInterface
	logger     *logrus.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(validation services.ValidationServiceInterface, logger *logrus.Logger) *DocumentHandler {
	return &DocumentHandler{
		validation: validation,
		logger:     logger,
	}
}

// GetDocument handles validation of a number of unknown kind
// @Summary Validate CPF or CNPJ
// @Description Classify a number by its digit count and validate its check digits
// @Tags Documentos
// @Produce json
// @Param numero path string true "CPF or CNPJ, masked or not" example(52998224725)
// @Success 200 {object} models.DocumentResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Router /documentos/{numero} [get]
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	h.validate(c, document.KindUnknown, c.Param("numero"))
}

// GetCPF handles CPF validation
// @Summary Validate CPF
// @Description Validate the check digits of a CPF
// @Tags Documentos
// @Produce json
// @Param cpf path string true "CPF (11 digits)" example(52998224725)
// @Success 200 {object} models.DocumentResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Router /cpf/{cpf} [get]
func (h *DocumentHandler) GetCPF(c *gin.Context) {
	h.validate(c, document.KindCPF, c.Param("cpf"))
}

// GetCNPJ handles CNPJ validation
// @Summary Validate CNPJ
// @Description Validate the check digits of a CNPJ and report its root and branch
// @Tags Documentos
// @Produce json
// @Param cnpj path string true "CNPJ (14 digits)" example(11222333000181)
// @Success 200 {object} models.DocumentResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Router /cnpj/{cnpj} [get]
func (h *DocumentHandler) GetCNPJ(c *gin.Context) {
	h.validate(c, document.KindCNPJ, c.Param("cnpj"))
}

// validate answers 400 only when the input has the wrong digit count; a
// checksum failure is a regular result with valid=false.
func (h *DocumentHandler) validate(c *gin.Context, kind document.Kind, input string) {
	requestID := c.GetString("request_id")

	result := h.validation.ValidateDocument(kind, input)

	if result.Reason == document.ReasonWrongLength {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"input":      input,
			"digits":     len(result.Digits),
		}).Warn("Document with wrong length")

		message := "Document must contain 11 (CPF) or 14 (CNPJ) digits"
		if kind != document.KindUnknown {
			message = fmt.Sprintf("%s must contain exactly %d digits", kind, kind.Length())
		}
		respondError(c, http.StatusBadRequest, "Invalid document", message, string(document.ReasonWrongLength))
		return
	}

	h.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"kind":       result.Kind.String(),
		"valid":      result.Valid,
	}).Debug("Document validated")

	c.JSON(http.StatusOK, models.NewDocumentResponse(result))
}

// ValidateBatch handles batch validation
// @Summary Validate many documents
// @Description Validate a list of CPFs and CNPJs; results keep the request order
// @Tags Documentos
// @Accept json
// @Produce json
// @Param request body models.BatchRequest true "Documents to validate"
// @Success 200 {object} models.BatchResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 413 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Router /documentos/lote [post]
func (h *DocumentHandler) ValidateBatch(c *gin.Context) {
	start := time.Now()
	requestID := c.GetString("request_id")

	var request models.BatchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid batch request format")

		respondError(c, http.StatusBadRequest, "Invalid request format", err.Error(), "INVALID_REQUEST")
		return
	}

	results, err := h.validation.ValidateBatch(c.Request.Context(), request.Documents)
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"total":      len(request.Documents),
			"error":      err.Error(),
		}).Warn("Batch validation failed")

		switch {
		case errors.Is(err, services.ErrBatchTooLarge):
			respondError(c, http.StatusRequestEntityTooLarge, "Batch too large", err.Error(), "BATCH_TOO_LARGE")
		default:
			respondError(c, http.StatusInternalServerError, "Internal server error",
				"An unexpected error occurred while processing batch request", "BATCH_ERROR")
		}
		return
	}

	response := models.BatchResponse{
		Results: make([]models.DocumentResponse, 0, len(results)),
		Total:   len(results),
	}
	for _, result := range results {
		if result.Valid {
			response.Valid++
		} else {
			response.Invalid++
		}
		response.Results = append(response.Results, models.NewDocumentResponse(result))
	}

	duration := time.Since(start)
	response.DurationMs = duration.Milliseconds()
	response.Timestamp = time.Now()

	h.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"total":      response.Total,
		"valid":      response.Valid,
		"invalid":    response.Invalid,
		"duration":   duration,
	}).Info("Batch validation completed")

	c.JSON(http.StatusOK, response)
}
