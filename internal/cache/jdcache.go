// Package cache provides an optional Redis-backed cache for parsed job
// descriptions, keyed by job ID. Parsing a job description costs an LLM round
// trip, and the same job is frequently matched against many resumes.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"talentlens/internal/config"
	"talentlens/internal/logging"
)

const keyPrefix = "jd:parsed:"

// JDCache stores parsed job description trees in Redis.
type JDCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logging.Logger
}

// New creates a JD cache from configuration. Returns nil when Redis is
// disabled; all methods tolerate a nil receiver, so callers never need to
// branch on whether caching is on.
func New(cfg *config.Config) (*JDCache, error) {
	if !cfg.Redis.Enabled {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	opts.DialTimeout = cfg.Redis.Timeout
	opts.ReadTimeout = cfg.Redis.Timeout
	opts.WriteTimeout = cfg.Redis.Timeout

	return &JDCache{
		client: redis.NewClient(opts),
		ttl:    cfg.Redis.CacheTTL,
		logger: logging.GetGlobalLogger(),
	}, nil
}

// Get returns the cached parse tree for a job ID, or (nil, false) on a miss.
// Redis failures are logged and treated as misses.
func (c *JDCache) Get(ctx context.Context, jobID string) (map[string]interface{}, bool) {
	if c == nil || jobID == "" {
		return nil, false
	}

	raw, err := c.client.Get(ctx, keyPrefix+jobID).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("JD cache read failed", map[string]interface{}{
			"job_id": jobID,
			"error":  err.Error(),
		})
		return nil, false
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		c.logger.Warn("JD cache entry corrupt, evicting", map[string]interface{}{
			"job_id": jobID,
		})
		c.client.Del(ctx, keyPrefix+jobID)
		return nil, false
	}

	return parsed, true
}

// Set stores a parse tree under the job ID with the configured TTL. Failures
// are logged, never returned: caching is best effort.
func (c *JDCache) Set(ctx context.Context, jobID string, parsed map[string]interface{}) {
	if c == nil || jobID == "" {
		return
	}

	raw, err := json.Marshal(parsed)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, keyPrefix+jobID, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("JD cache write failed", map[string]interface{}{
			"job_id": jobID,
			"error":  err.Error(),
		})
	}
}

// Close releases the Redis connection. Safe on a nil cache.
func (c *JDCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
