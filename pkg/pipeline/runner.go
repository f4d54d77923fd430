package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/resumeforge/resumeforge/pkg/buildinfo"
	"github.com/resumeforge/resumeforge/pkg/cache"
	"github.com/resumeforge/resumeforge/pkg/compose"
	"github.com/resumeforge/resumeforge/pkg/errors"
	"github.com/resumeforge/resumeforge/pkg/observability"
	"github.com/resumeforge/resumeforge/pkg/render"
	"github.com/resumeforge/resumeforge/pkg/resume"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and the render service use this to avoid duplicating caching
// logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete compose → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, doc *resume.Document, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	cfg, err := compose.Resolve(doc.Config)
	if err != nil {
		return nil, err
	}
	if opts.Footer != nil {
		cfg.Footer = *opts.Footer
	}

	result := &Result{}

	// Stage 1: Compose
	composeStart := time.Now()
	blocks, warnings, err := r.Compose(ctx, doc, cfg, opts)
	if err != nil {
		return nil, err
	}
	result.Blocks = blocks
	result.Warnings = warnings
	result.Stats.ComposeTime = time.Since(composeStart)
	result.Stats.BlockCount = len(blocks)

	for _, w := range warnings {
		opts.Logger.Warn(errors.UserMessage(w))
	}

	// Compute the document hash for cache keys and API responses.
	if data, err := doc.MarshalCanonical(); err == nil {
		result.DocHash = cache.Hash(data)
	}

	opts.Logger.Info("composed document",
		"blocks", len(blocks),
		"warnings", len(warnings),
		"duration", result.Stats.ComposeTime)

	// Stage 2: Render
	renderStart := time.Now()
	pdf, renderHit, err := r.RenderWithCacheInfo(ctx, doc, blocks, cfg, opts)
	if err != nil {
		return nil, err
	}
	result.PDF = pdf
	result.Stats.RenderTime = time.Since(renderStart)
	result.Stats.PDFSize = len(pdf)
	result.CacheInfo.RenderHit = renderHit

	opts.Logger.Info("rendered document",
		"format", opts.Format,
		"bytes", len(pdf),
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Compose assembles the block sequence for a document under a resolved
// configuration. The returned warnings are non-fatal; an error means a
// fatal issue surfaced during composition.
func (r *Runner) Compose(ctx context.Context, doc *resume.Document, cfg *compose.Config, opts Options) ([]compose.Block, []error, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnComposeStart(ctx, len(cfg.SectionOrder))
	start := time.Now()

	blocks, issues := compose.Assemble(doc, cfg)

	warnings := make([]error, 0, len(issues))
	for _, issue := range issues {
		if errors.Fatal(issue) {
			hooks.OnComposeComplete(ctx, len(blocks), time.Since(start), issue)
			return nil, nil, issue
		}
		warnings = append(warnings, issue)
	}

	hooks.OnComposeComplete(ctx, len(blocks), time.Since(start), nil)
	return blocks, warnings, nil
}

// RenderWithCacheInfo renders the block sequence with caching and reports
// whether the artifact came from the cache. The cache key combines the
// document's content hash, the resolved configuration fingerprint, and the
// generator version, so any input that can change the bytes changes the
// key.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, doc *resume.Document, blocks []compose.Block, cfg *compose.Config, opts Options) (pdf []byte, hit bool, err error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Format)
	defer func(start time.Time) {
		hooks.OnRenderComplete(ctx, opts.Format, len(pdf), time.Since(start), err)
	}(time.Now())

	data, err := doc.MarshalCanonical()
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "fingerprinting document")
	}
	key := r.Keyer.ArtifactKey(cache.Hash(data), cache.ArtifactKeyOpts{
		Format:     opts.Format,
		ConfigHash: configFingerprint(cfg),
		Version:    buildinfo.Version,
	})

	cacheHooks := observability.Cache()

	// Try cache first (unless refresh requested).
	if !opts.Refresh {
		if cached, ok, err := r.Cache.Get(ctx, key); err == nil && ok {
			cacheHooks.OnCacheHit(ctx, "artifact")
			return cached, true, nil
		}
	}
	cacheHooks.OnCacheMiss(ctx, "artifact")

	sheet, err := compose.NewStylesheet(cfg)
	if err != nil {
		return nil, false, err
	}

	pdf, err = render.PDF(blocks, sheet,
		render.WithMargin(compose.Inch(cfg.Margin)),
		render.WithTitle(documentTitle(doc)),
	)
	if err != nil {
		return nil, false, err
	}

	if setErr := r.Cache.Set(ctx, key, pdf, cache.TTLArtifact); setErr == nil {
		cacheHooks.OnCacheSet(ctx, "artifact", len(pdf))
	}

	return pdf, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Render(ctx context.Context, doc *resume.Document, blocks []compose.Block, cfg *compose.Config, opts Options) ([]byte, error) {
	pdf, _, err := r.RenderWithCacheInfo(ctx, doc, blocks, cfg, opts)
	return pdf, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// configFingerprint reduces a resolved configuration to a stable hash.
func configFingerprint(cfg *compose.Config) string {
	data, err := json.Marshal(cfg)
	if err != nil {
		return ""
	}
	return cache.Hash(data)
}

// documentTitle derives the PDF title metadata from the document.
func documentTitle(doc *resume.Document) string {
	if doc.Personal.Name == "" {
		return "Resume"
	}
	return doc.Personal.Name + " - Resume"
}
