package planner

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*PlanCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewPlanCache(client, time.Minute), mr
}

func TestPlanCacheRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	req := sampleRequest()
	plan := GenerateFallbackPlan(req)

	require.Nil(t, cache.Get(ctx, req))
	cache.Set(ctx, req, plan)

	got := cache.Get(ctx, req)
	require.NotNil(t, got)
	assert.Equal(t, plan, got)
}

func TestPlanCacheKeyedByRequest(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	req := sampleRequest()
	cache.Set(ctx, req, GenerateFallbackPlan(req))

	other := sampleRequest()
	other.City = "Shanghai"
	assert.Nil(t, cache.Get(ctx, other))
}

func TestPlanCacheExpires(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	req := sampleRequest()
	cache.Set(ctx, req, GenerateFallbackPlan(req))

	mr.FastForward(2 * time.Minute)
	assert.Nil(t, cache.Get(ctx, req))
}
