package compose

import "github.com/resumeforge/resumeforge/pkg/resume"

// renderSummary emits the professional summary as a single justified
// paragraph. The section is skipped entirely when the normalized summary is
// empty.
func renderSummary(b *Builder, cfg *Config, doc *resume.Document) {
	if doc.Summary == "" {
		return
	}
	b.SectionHeader("PROFESSIONAL SUMMARY")
	b.Paragraph(StyleSummary, doc.Summary)
	b.Spacer(Inch(cfg.ItemSpacing))
}
