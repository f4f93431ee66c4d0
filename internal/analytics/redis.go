package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// retention bounds how long day buckets survive; Redis expires them after this.
const retention = 30 * 24 * time.Hour

// RedisRecorder keeps one counter per job per UTC day.
type RedisRecorder struct {
	client *redis.Client
}

// NewRedisRecorder creates a recorder on an existing Redis client.
func NewRedisRecorder(client *redis.Client) *RedisRecorder {
	return &RedisRecorder{client: client}
}

func (r *RedisRecorder) ApplicationSubmitted(ctx context.Context, jobID string, at time.Time) error {
	key := buildKey(jobID, at)

	pipe := r.client.Pipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, retention)

	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("redis pipeline: %w", err)
	}

	return nil
}

func buildKey(jobID string, t time.Time) string {
	return fmt.Sprintf("applications:j:%s:d:%s", jobID, t.UTC().Format("20060102"))
}
