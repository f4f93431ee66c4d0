package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Middleware reports one RequestCompleted per request. Requests matching no
// route are grouped under a single label to keep cardinality bounded.
func Middleware(sink Sink) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		sink.RequestCompleted(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
