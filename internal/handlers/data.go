package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Data handles GET /api/data
// @Summary Sample data
// @Description Return a fixed sample payload of three items
// @Tags info
// @Produce json
// @Success 200 {object} models.DataResponse "Sample data"
// @Failure 500 {object} ErrorResponse "Host lookup failed"
// @Router /data [get]
func (h *InfoHandler) Data(c *gin.Context) {
	response, err := h.infoService.Data()
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
