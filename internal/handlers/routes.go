package handlers

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts every endpoint on the router.
func RegisterRoutes(r *gin.Engine, jobs *JobHandler, applications *ApplicationHandler, diagnostics *DiagnosticsHandler) {
	r.GET("/", Root)
	r.GET("/test", diagnostics.Test)
	r.GET("/schema", Schema)

	api := r.Group("/api")
	{
		api.GET("/jobs", jobs.ListJobs)
		api.POST("/jobs/seed", jobs.SeedJobs)
		api.POST("/apply", applications.Apply)
	}
}
