// Package analytics counts successful application submissions per job.
// Recording failures never affect the request outcome; callers log and move on.
package analytics

import (
	"context"
	"time"
)

// Recorder is the submission counter backend.
type Recorder interface {
	ApplicationSubmitted(ctx context.Context, jobID string, at time.Time) error
}

// NoopRecorder is used when no analytics backend is configured.
type NoopRecorder struct{}

// NewNoopRecorder returns a recorder that drops everything.
func NewNoopRecorder() *NoopRecorder {
	return &NoopRecorder{}
}

func (n *NoopRecorder) ApplicationSubmitted(ctx context.Context, jobID string, at time.Time) error {
	return nil
}
