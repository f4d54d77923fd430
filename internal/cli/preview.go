package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/resumeforge/resumeforge/pkg/compose"
	"github.com/resumeforge/resumeforge/pkg/resume"
)

// previewCommand creates the preview command for interactive section
// browsing.
func (c *CLI) previewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preview [resume-file]",
		Short: "Browse the composed sections of a resume interactively",
		Long: `Browse the composed sections of a resume interactively.

The preview command composes the document the same way generate does, then
opens a terminal browser over the result. The list shows each section with
its block count; selecting a section shows the text that will appear on the
page, in page order. No PDF is produced.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(args[0])
		},
	}
}

// runPreview loads the document and opens the section browser.
func (c *CLI) runPreview(input string) error {
	doc, err := resume.Read(input)
	if err != nil {
		return err
	}

	cfg, err := compose.Resolve(doc.Config)
	if err != nil {
		return err
	}

	entries := sectionEntries(doc, cfg)
	if len(entries) == 0 {
		printInfo("No sections to preview")
		return nil
	}

	printInfo("Loaded %s (%d sections)", StyleHighlight.Render(doc.Personal.Name), len(entries))
	printNewline()

	m := NewPreviewModel(entries)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// sectionEntries composes each ordered section that carries data. Unknown
// names in the order are skipped here; check reports them.
func sectionEntries(doc *resume.Document, cfg *compose.Config) []SectionEntry {
	var entries []SectionEntry
	for _, name := range cfg.SectionOrder {
		if !doc.HasSection(name) {
			continue
		}
		blocks, ok := compose.Section(doc, cfg, name)
		if !ok || len(blocks) == 0 {
			continue
		}
		entries = append(entries, SectionEntry{Name: name, Blocks: blocks})
	}
	return entries
}
