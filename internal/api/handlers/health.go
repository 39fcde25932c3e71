package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Conceptual-Machines/magda-harmony/internal/services"
)

type HealthHandler struct {
	service *services.ChordService
}

func NewHealthHandler(service *services.ChordService) *HealthHandler {
	return &HealthHandler{service: service}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":          "healthy",
		"cache_size":      h.service.CacheLen(),
		"accidental_mode": h.service.Mode().String(),
	})
}
