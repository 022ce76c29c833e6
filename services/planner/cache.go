// File: services/planner/cache.go
package planner

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"tripflow/models"

	"github.com/go-redis/redis/v8"
)

const planCachePrefix = "plan:cache:"

// PlanCache memoizes generated itineraries by request, so identical requests
// skip the orchestration round-trip while the entry lives.
type PlanCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPlanCache(client *redis.Client, ttl time.Duration) *PlanCache {
	return &PlanCache{client: client, ttl: ttl}
}

// cacheKey derives a stable key from the canonical JSON of the request.
func cacheKey(req *models.TripRequest) string {
	raw, _ := json.Marshal(req)
	sum := sha256.Sum256(raw)
	return planCachePrefix + hex.EncodeToString(sum[:])
}

// Get returns the cached plan for a request, or nil on a miss or any error.
func (c *PlanCache) Get(ctx context.Context, req *models.TripRequest) *models.TripPlan {
	data, err := c.client.Get(ctx, cacheKey(req)).Result()
	if err != nil {
		return nil
	}
	var plan models.TripPlan
	if err := json.Unmarshal([]byte(data), &plan); err != nil {
		return nil
	}
	return &plan
}

// Set stores a plan for a request. Best effort; errors are swallowed.
func (c *PlanCache) Set(ctx context.Context, req *models.TripRequest, plan *models.TripPlan) {
	raw, err := json.Marshal(plan)
	if err != nil {
		return
	}
	c.client.Set(ctx, cacheKey(req), raw, c.ttl)
}
