package server

import (
	"context"
	"sync"
	"time"

	"github.com/resumeforge/resumeforge/pkg/observability"
)

// Counters accumulates render and cache activity for the stats endpoint.
// It implements the observability hook interfaces so that events reported by
// the pipeline and cache layers feed the counters without the handlers
// instrumenting anything themselves.
type Counters struct {
	mu           sync.Mutex
	renders      uint64
	renderErrors uint64
	cacheHits    uint64
	cacheMisses  uint64
}

// NewCounters creates a zeroed counter set.
func NewCounters() *Counters {
	return &Counters{}
}

// StatsSnapshot is a point-in-time copy of the counters.
type StatsSnapshot struct {
	Renders      uint64 `json:"renders"`
	RenderErrors uint64 `json:"render_errors"`
	CacheHits    uint64 `json:"cache_hits"`
	CacheMisses  uint64 `json:"cache_misses"`
}

// Snapshot returns a consistent copy of the current counters.
func (c *Counters) Snapshot() StatsSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return StatsSnapshot{
		Renders:      c.renders,
		RenderErrors: c.renderErrors,
		CacheHits:    c.cacheHits,
		CacheMisses:  c.cacheMisses,
	}
}

// OnComposeStart implements observability.PipelineHooks.
func (c *Counters) OnComposeStart(context.Context, int) {}

// OnComposeComplete implements observability.PipelineHooks.
func (c *Counters) OnComposeComplete(context.Context, int, time.Duration, error) {}

// OnRenderStart implements observability.PipelineHooks.
func (c *Counters) OnRenderStart(context.Context, string) {}

// OnRenderComplete counts one render, hit or fresh. Failed renders count
// separately so the stats reveal a broken deployment.
func (c *Counters) OnRenderComplete(_ context.Context, _ string, _ int, _ time.Duration, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.renderErrors++
		return
	}
	c.renders++
}

// OnCacheHit implements observability.CacheHooks.
func (c *Counters) OnCacheHit(context.Context, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cacheHits++
}

// OnCacheMiss implements observability.CacheHooks.
func (c *Counters) OnCacheMiss(context.Context, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cacheMisses++
}

// OnCacheSet implements observability.CacheHooks.
func (c *Counters) OnCacheSet(context.Context, string, int) {}

// Ensure Counters satisfies the hook interfaces.
var (
	_ observability.PipelineHooks = (*Counters)(nil)
	_ observability.CacheHooks    = (*Counters)(nil)
)

