package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stuvify/jobs-api/internal/dtos"
	"github.com/stuvify/jobs-api/internal/services"
)

// ApplicationHandler serves the job application endpoint.
type ApplicationHandler struct {
	ApplicationService *services.ApplicationService
}

func NewApplicationHandler(a *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{ApplicationService: a}
}

// Apply is the POST /api/apply endpoint
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req dtos.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid JSON format: " + err.Error()})
		return
	}

	id, err := h.ApplicationService.Submit(c.Request.Context(), req)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"status": "ok", "application_id": id})
	case errors.Is(err, services.ErrInvalidJobID):
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid job id"})
	case errors.Is(err, services.ErrJobNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Job not found"})
	case errors.Is(err, services.ErrInvalidApplication):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
	}
}
