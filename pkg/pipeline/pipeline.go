// Package pipeline provides the core generation pipeline for resumeforge.
//
// This package implements the complete compose → render pipeline that is
// shared by the CLI and the render service. By centralizing this logic, we
// ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Compose: Transform a loaded document into the abstract block sequence
//  2. Render: Produce the final PDF bytes from the block sequence
//
// Loading documents is the caller's job (see the resume package); the
// pipeline starts from a normalized document. Rendered artifacts are
// cached keyed by the document's content hash plus a fingerprint of the
// resolved configuration, so re-rendering an unchanged resume is a cache
// read.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	doc, err := resume.Read("resume.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := runner.Execute(ctx, doc, pipeline.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(doc.OutputFilename(), result.PDF, 0o644)
//
// Run individual stages:
//
//	cfg, err := compose.Resolve(doc.Config)
//	blocks, warnings, err := runner.Compose(ctx, doc, cfg, opts)
//	pdf, err := runner.Render(ctx, doc, blocks, cfg, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/resumeforge/resumeforge/pkg/compose"
	"github.com/resumeforge/resumeforge/pkg/errors"
)

// FormatPDF is the only output format the render delegate produces.
const FormatPDF = "pdf"

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPDF: true,
}

// ValidateFormat checks that an output format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeUnsupported, "invalid format: %q (only pdf output is supported)", format)
	}
	return nil
}

// Options contains all configuration for the generation pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Format is the output format. Defaults to "pdf".
	Format string `json:"format,omitempty"`

	// Refresh bypasses cache reads and rewrites entries.
	Refresh bool `json:"refresh,omitempty"`

	// Footer overrides the document's footer setting when non-nil. The
	// override is applied to the resolved configuration, so it participates
	// in the artifact cache key.
	Footer *bool `json:"footer,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks fields and applies defaults. This method is
// idempotent: calling it multiple times has the same effect as calling it
// once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Format == "" {
		o.Format = FormatPDF
	}
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Blocks is the composed block sequence.
	Blocks []compose.Block

	// DocHash is the content hash of the document's canonical serialization.
	DocHash string

	// PDF contains the rendered document.
	PDF []byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo

	// Warnings are the non-fatal composition issues (unknown sections in the
	// configured order, sections with data the order never renders).
	Warnings []error
}

// Stats contains pipeline execution statistics.
type Stats struct {
	BlockCount  int
	PDFSize     int
	ComposeTime time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage. Composition is pure
// computation and never cached; only rendered artifacts are.
type CacheInfo struct {
	RenderHit bool
}
