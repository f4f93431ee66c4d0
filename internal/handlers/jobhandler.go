package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stuvify/jobs-api/internal/dtos"
	"github.com/stuvify/jobs-api/internal/services"
)

// JobHandler serves the job listing and seeding endpoints.
type JobHandler struct {
	JobService *services.JobService
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(j *services.JobService) *JobHandler {
	return &JobHandler{JobService: j}
}

// ListJobs is the GET /api/jobs endpoint
func (h *JobHandler) ListJobs(c *gin.Context) {
	var q dtos.JobListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid query: " + err.Error()})
		return
	}

	jobs, err := h.JobService.List(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// SeedJobs is the POST /api/jobs/seed endpoint
func (h *JobHandler) SeedJobs(c *gin.Context) {
	inserted, err := h.JobService.Seed(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	if inserted == 0 {
		c.JSON(http.StatusOK, gin.H{"inserted": 0, "message": "Jobs already exist"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"inserted": inserted})
}
