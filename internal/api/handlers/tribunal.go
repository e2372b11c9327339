package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nexconsult/juris-api/internal/models"
	"github.com/nexconsult/juris-api/internal/services"
	"github.com/nexconsult/juris-api/internal/tribunal"
	"github.com/sirupsen/logrus"
)

// TribunalHandler exposes the court table
type TribunalHandler struct {
	validation services.ValidationServiceInterface
	logger     *logrus.Logger
}

// NewTribunalHandler creates a new tribunal handler
func NewTribunalHandler(validation services.ValidationServiceInterface, logger *logrus.Logger) *TribunalHandler {
	return &TribunalHandler{
		validation: validation,
		logger:     logger,
	}
}

// TribunalListResponse is the court table
type TribunalListResponse struct {
	Tribunals []models.TribunalResponse `json:"tribunais"`
	Total     int                       `json:"total" example:"92"`
}

// List handles the court table listing
// @Summary List tribunals
// @Description List every registered court ordered by key
// @Tags Tribunais
// @Produce json
// @Success 200 {object} TribunalListResponse
// @Router /tribunais [get]
func (h *TribunalHandler) List(c *gin.Context) {
	entries := h.validation.Tribunals()

	response := TribunalListResponse{
		Tribunals: make([]models.TribunalResponse, 0, len(entries)),
		Total:     len(entries),
	}
	for _, entry := range entries {
		response.Tribunals = append(response.Tribunals, models.NewTribunalResponse(entry))
	}

	c.JSON(http.StatusOK, response)
}

// Get handles a single court lookup
// @Summary Get a tribunal
// @Description Look a court up by its J.TR key
// @Tags Tribunais
// @Produce json
// @Param chave path string true "Branch and tribunal code" example(8.26)
// @Success 200 {object} models.TribunalResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /tribunais/{chave} [get]
func (h *TribunalHandler) Get(c *gin.Context) {
	chave := c.Param("chave")

	key, err := tribunal.ParseKey(chave)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid tribunal key",
			"Key must look like 8.26 (branch.tribunal)", "INVALID_KEY")
		return
	}

	entry, err := h.validation.Tribunal(key)
	if err != nil {
		if errors.Is(err, tribunal.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Tribunal not found",
				"No tribunal registered for "+key.String(), "TRIBUNAL_NOT_FOUND")
			return
		}

		h.logger.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"chave":      chave,
			"error":      err.Error(),
		}).Error("Tribunal lookup failed")
		respondError(c, http.StatusInternalServerError, "Internal server error",
			"An unexpected error occurred while processing your request", "INTERNAL_ERROR")
		return
	}

	c.JSON(http.StatusOK, models.NewTribunalResponse(entry))
}
