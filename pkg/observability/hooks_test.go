package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

// recordingPipelineHooks counts invocations for assertions.
type recordingPipelineHooks struct {
	composeStarts    int
	composeCompletes int
	renderStarts     int
	renderCompletes  int
	lastErr          error
}

func (r *recordingPipelineHooks) OnComposeStart(_ context.Context, _ int) {
	r.composeStarts++
}

func (r *recordingPipelineHooks) OnComposeComplete(_ context.Context, _ int, _ time.Duration, err error) {
	r.composeCompletes++
	r.lastErr = err
}

func (r *recordingPipelineHooks) OnRenderStart(_ context.Context, _ string) {
	r.renderStarts++
}

func (r *recordingPipelineHooks) OnRenderComplete(_ context.Context, _ string, _ int, _ time.Duration, err error) {
	r.renderCompletes++
	r.lastErr = err
}

type recordingCacheHooks struct {
	hits   int
	misses int
	sets   int
}

func (r *recordingCacheHooks) OnCacheHit(_ context.Context, _ string)      { r.hits++ }
func (r *recordingCacheHooks) OnCacheMiss(_ context.Context, _ string)     { r.misses++ }
func (r *recordingCacheHooks) OnCacheSet(_ context.Context, _ string, _ int) { r.sets++ }

func TestDefaultHooksAreNoop(t *testing.T) {
	Reset()
	ctx := context.Background()

	// Should not panic.
	Pipeline().OnComposeStart(ctx, 3)
	Pipeline().OnComposeComplete(ctx, 12, time.Millisecond, nil)
	Pipeline().OnRenderStart(ctx, "pdf")
	Pipeline().OnRenderComplete(ctx, "pdf", 1024, time.Millisecond, nil)
	Cache().OnCacheHit(ctx, "artifact")
	Cache().OnCacheMiss(ctx, "artifact")
	Cache().OnCacheSet(ctx, "artifact", 1024)
}

func TestSetPipelineHooks(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	rec := &recordingPipelineHooks{}
	SetPipelineHooks(rec)

	ctx := context.Background()
	Pipeline().OnComposeStart(ctx, 2)
	Pipeline().OnComposeComplete(ctx, 8, time.Millisecond, nil)
	Pipeline().OnRenderStart(ctx, "pdf")
	Pipeline().OnRenderComplete(ctx, "pdf", 2048, time.Millisecond, errors.New("boom"))

	if rec.composeStarts != 1 {
		t.Errorf("composeStarts = %d, want 1", rec.composeStarts)
	}
	if rec.composeCompletes != 1 {
		t.Errorf("composeCompletes = %d, want 1", rec.composeCompletes)
	}
	if rec.renderStarts != 1 {
		t.Errorf("renderStarts = %d, want 1", rec.renderStarts)
	}
	if rec.renderCompletes != 1 {
		t.Errorf("renderCompletes = %d, want 1", rec.renderCompletes)
	}
	if rec.lastErr == nil {
		t.Error("expected error to be recorded")
	}
}

func TestSetCacheHooks(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	rec := &recordingCacheHooks{}
	SetCacheHooks(rec)

	ctx := context.Background()
	Cache().OnCacheHit(ctx, "artifact")
	Cache().OnCacheHit(ctx, "artifact")
	Cache().OnCacheMiss(ctx, "artifact")
	Cache().OnCacheSet(ctx, "artifact", 512)

	if rec.hits != 2 {
		t.Errorf("hits = %d, want 2", rec.hits)
	}
	if rec.misses != 1 {
		t.Errorf("misses = %d, want 1", rec.misses)
	}
	if rec.sets != 1 {
		t.Errorf("sets = %d, want 1", rec.sets)
	}
}

func TestSetNilHooksIgnored(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	SetPipelineHooks(nil)
	SetCacheHooks(nil)

	if Pipeline() == nil {
		t.Error("Pipeline() returned nil after SetPipelineHooks(nil)")
	}
	if Cache() == nil {
		t.Error("Cache() returned nil after SetCacheHooks(nil)")
	}
}

func TestReset(t *testing.T) {
	rec := &recordingPipelineHooks{}
	SetPipelineHooks(rec)
	Reset()

	Pipeline().OnComposeStart(context.Background(), 1)
	if rec.composeStarts != 0 {
		t.Error("Reset did not restore no-op hooks")
	}
}
