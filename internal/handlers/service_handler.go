package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"github.com/harentsoaR/doctors-portal-api/internal/utils"
)

// GetServices lists every service by name. The slot templates are left out;
// clients get those through the availability endpoint.
func (h *Handler) GetServices(c *gin.Context) {
	services, err := h.Store.Services.FindNames(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve services"})
		return
	}
	if services == nil {
		services = make([]models.Service, 0)
	}
	c.JSON(http.StatusOK, services)
}
