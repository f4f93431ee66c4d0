package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/stuvify/jobs-api/internal/models"
	"github.com/stuvify/jobs-api/internal/store"
)

// Root is the GET / liveness message.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from Stuvify Jobs API!"})
}

// Schema is the GET /schema endpoint. Database viewers read the collection
// shapes from here instead of poking the store directly.
func Schema(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"collections": models.Schemas()})
}

// DiagnosticsHandler serves the GET /test store health report.
type DiagnosticsHandler struct {
	Store *store.Store
}

func NewDiagnosticsHandler(st *store.Store) *DiagnosticsHandler {
	return &DiagnosticsHandler{Store: st}
}

// Test reports backend liveness, store availability and reachability, and
// whether the store environment variables are set. It never fails: every
// problem degrades to a descriptive status string.
func (h *DiagnosticsHandler) Test(c *gin.Context) {
	response := gin.H{
		"backend":           "✅ Running",
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.Store.Available() {
		response["connection_status"] = "Connected"

		collections, err := h.Store.ListCollections(c.Request.Context(), 10)
		if err != nil {
			response["database"] = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
		} else {
			response["database"] = "✅ Connected & Working"
			response["collections"] = collections
		}
	} else {
		response["database"] = "⚠️  Available but not initialized"
	}

	// Environment variables are re-read on every check.
	response["database_url"] = envStatus("DATABASE_URL")
	response["database_name"] = envStatus("DATABASE_NAME")

	c.JSON(http.StatusOK, response)
}

func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
