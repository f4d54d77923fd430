package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/resumeforge/resumeforge/pkg/errors"
	"github.com/resumeforge/resumeforge/pkg/pipeline"
	"github.com/resumeforge/resumeforge/pkg/resume"
)

// generateOpts holds the command-line flags for the root generate command.
type generateOpts struct {
	outputDir string // directory for the generated PDF
	noCache   bool   // disable the artifact cache
	refresh   bool   // re-render even on a cache hit
	footer    *bool  // footer override; nil when the flag was not given
}

// runGenerate loads the document, runs the pipeline, and writes the PDF.
func (c *CLI) runGenerate(ctx context.Context, input string, opts generateOpts) error {
	doc, err := resume.Read(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Rendering resume...")
	spinner.Start()

	result, err := runner.Execute(ctx, doc, pipeline.Options{
		Format:  pipeline.FormatPDF,
		Refresh: opts.refresh,
		Footer:  opts.footer,
		Logger:  c.Logger,
	})
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath, err := writePDF(opts.outputDir, doc.OutputFilename(), result.PDF)
	if err != nil {
		return err
	}

	printSuccess("Resume generated")
	for _, w := range result.Warnings {
		printWarning("%s", errors.UserMessage(w))
	}
	printFile(outputPath)
	printStats(len(doc.SectionsPresent()), len(result.Blocks), result.CacheInfo.RenderHit)
	printNewline()
	printNextStep("Preview sections", appName+" preview "+input)

	return nil
}

// writePDF creates the output directory if needed and writes the artifact.
// The bytes go to a temporary file first so a failed write never leaves a
// partial PDF at the final path.
func writePDF(dir, filename string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, filename)
	tmp, err := os.CreateTemp(dir, "."+filename+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("create output file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
