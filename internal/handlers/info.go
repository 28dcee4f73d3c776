package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Info handles GET /api/info
// @Summary Service and platform info
// @Description Report service version, host OS family and the runtime version executing the service
// @Tags info
// @Produce json
// @Success 200 {object} models.InfoResponse "Service info"
// @Failure 500 {object} ErrorResponse "Host lookup failed"
// @Router /info [get]
func (h *InfoHandler) Info(c *gin.Context) {
	response, err := h.infoService.Info()
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
