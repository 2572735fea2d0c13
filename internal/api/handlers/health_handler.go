package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leadradar/leadradar-api/internal/repository"
	"github.com/leadradar/leadradar-api/pkg/response"
)

type HealthHandler struct {
	repos *repository.Repos
}

func NewHealthHandler(repos *repository.Repos) *HealthHandler {
	return &HealthHandler{repos: repos}
}

// Health godoc
// @Summary Liveness and database connectivity check
// @Tags ops
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Failure 503 {object} response.HealthResponse "Database unreachable"
// @Router /api/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.repos.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, response.HealthResponse{Status: "degraded"})
		return
	}
	c.JSON(http.StatusOK, response.HealthResponse{Status: "ok"})
}
