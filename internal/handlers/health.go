package handlers

import (
	"net/http"

	"github.com/backendservices/python-api/internal/services"
	"github.com/gin-gonic/gin"
)

// InfoHandler handles the informational /api endpoints
type InfoHandler struct {
	infoService *services.InfoService
}

// NewInfoHandler creates a new info handler
func NewInfoHandler(infoService *services.InfoService) *InfoHandler {
	return &InfoHandler{
		infoService: infoService,
	}
}

// Health handles GET /api/health
// @Summary Health check
// @Description Report service liveness together with the serving host and current UTC time
// @Tags info
// @Produce json
// @Success 200 {object} models.HealthResponse "Service is healthy"
// @Failure 500 {object} ErrorResponse "Host lookup failed"
// @Router /health [get]
func (h *InfoHandler) Health(c *gin.Context) {
	response, err := h.infoService.Health()
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
