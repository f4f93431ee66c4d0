// Package metrics records HTTP serving metrics.
package metrics

import "time"

// Sink receives request metrics.
// All methods are fire-and-forget: implementations MUST NOT block or
// propagate errors. If the backend is unavailable, implementations log
// warnings and continue.
type Sink interface {
	RequestCompleted(method, route string, status int, duration time.Duration)
}
