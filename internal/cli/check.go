package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/resumeforge/resumeforge/pkg/compose"
	"github.com/resumeforge/resumeforge/pkg/errors"
	"github.com/resumeforge/resumeforge/pkg/pipeline"
	"github.com/resumeforge/resumeforge/pkg/resume"
)

// checkCommand creates the check command for validating without rendering.
func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [resume-file]",
		Short: "Validate a resume document without rendering it",
		Long: `Validate a resume document without rendering it.

The check command loads the document, validates it against the schema,
resolves its configuration, and runs the composition stage. It reports the
sections found, the number of blocks they compose to, and any section
ordering warnings. The exit code is non-zero when the document fails to
load, validate, or compose.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd.Context(), args[0])
		},
	}
}

// runCheck loads and composes the document, then prints its stats.
// Rendering is skipped, so no cache is involved.
func (c *CLI) runCheck(ctx context.Context, input string) error {
	prog := newProgress(c.Logger)

	doc, err := resume.Read(input)
	if err != nil {
		return err
	}

	cfg, err := compose.Resolve(doc.Config)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(nil, nil, c.Logger)
	defer runner.Close()

	blocks, warnings, err := runner.Compose(ctx, doc, cfg, pipeline.Options{Logger: c.Logger})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Composed %d blocks", len(blocks)))

	printSuccess("Document valid")
	printKeyValue("Name", doc.Personal.Name)
	printKeyValue("Sections", strings.Join(doc.SectionsPresent(), ", "))
	printKeyValue("Blocks", strconv.Itoa(len(blocks)))
	printKeyValue("Output", doc.OutputFilename())
	for _, w := range warnings {
		printWarning("%s", errors.UserMessage(w))
	}

	return nil
}
