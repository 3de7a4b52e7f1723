package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"landrecords/internal/service"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	db           Pinger
	capabilities service.CapabilityService
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db Pinger, capabilities service.CapabilityService) *HealthHandler {
	return &HealthHandler{db: db, capabilities: capabilities}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	if err := h.db.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "database not reachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Capabilities handles GET /api/v1/health
// @Summary External engine status
// @Description Report which of OCR, translation and summarization are configured. Status is "degraded" when any engine is unavailable.
// @Tags health
// @Produce json
// @Success 200 {object} Response{data=CapabilitiesResponse} "Engine status"
// @Router /health [get]
func (h *HealthHandler) Capabilities(c *gin.Context) {
	caps := h.capabilities.Capabilities()
	status := "ok"
	for _, capability := range caps {
		if !capability.Available {
			status = "degraded"
			break
		}
	}
	RespondOK(c, CapabilitiesResponse{Status: status, Capabilities: caps})
}
