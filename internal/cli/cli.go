// Package cli implements the resumeforge command-line interface.
//
// The root command renders a resume document to PDF. Subcommands cover the
// rest of the surface: validating documents without rendering, browsing the
// composed sections interactively, running the HTTP render service, and
// managing the local artifact cache. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
//   - resumeforge <file>: generate the PDF
//   - check: load, validate, and compose without rendering
//   - preview: interactive section browser
//   - serve: HTTP render service
//   - cache: manage the artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// lives on the CLI struct and is handed to the pipeline runner, so stage
// timings and cache decisions surface under -v.
//
// # Example
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/resumeforge/resumeforge/pkg/buildinfo"
	"github.com/resumeforge/resumeforge/pkg/cache"
	"github.com/resumeforge/resumeforge/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "resumeforge"

	// defaultOutputDir is where generated PDFs land unless -o overrides it.
	defaultOutputDir = "output"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The root command itself performs generation, so the everyday invocation
// stays `resumeforge resume.yaml`.
func (c *CLI) RootCommand() *cobra.Command {
	opts := generateOpts{outputDir: defaultOutputDir}
	var footer bool

	root := &cobra.Command{
		Use:          "resumeforge [resume-file]",
		Short:        "Resumeforge renders structured resume documents to PDF",
		Long:         `Resumeforge is a CLI tool for turning a structured resume document (YAML, TOML, or JSON) into a polished single-column PDF, with deterministic output and local artifact caching.`,
		Version:      buildinfo.Version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Usage()
				return fmt.Errorf("missing resume file argument")
			}
			if cmd.Flags().Changed("footer") {
				opts.footer = &footer
			}
			return c.runGenerate(cmd.Context(), args[0], opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.Flags().StringVarP(&opts.outputDir, "output-dir", "o", opts.outputDir, "directory for the generated PDF")
	root.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	root.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when a cached artifact exists")
	root.Flags().BoolVar(&footer, "footer", false, "override the document's footer setting")

	// Register all subcommands
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	store, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/resumeforge/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
