package compose

import (
	"strings"

	"github.com/resumeforge/resumeforge/pkg/resume"
)

// renderProjects emits project entries: a name/date row, a technologies
// subtitle, optional description and highlights, and a trailing link line
// with an italic lead-in.
func renderProjects(b *Builder, cfg *Config, doc *resume.Document) {
	entries := doc.Projects
	if len(entries) == 0 {
		return
	}
	b.SectionHeader("PROJECTS")

	for i, p := range entries {
		if i > 0 {
			b.Spacer(Inch(cfg.ItemSpacing))
		}
		if p.Name != "" {
			// Project dates are plain strings, not ranges.
			b.TitleRow(p.Name, p.Date)
		}
		if len(p.Technologies) > 0 {
			b.Paragraph(StyleItemSubtitle, "Technologies: "+strings.Join(p.Technologies, ", "))
		}
		if p.Description != "" {
			b.Spacer(Inch(detailGap))
			b.Paragraph(StyleBody, p.Description)
		}
		if len(p.Highlights) > 0 {
			b.Spacer(Inch(detailGap))
			for _, h := range p.Highlights {
				b.Paragraph(StyleBody, "• "+h)
			}
		}
		if p.URL != "" {
			b.Styled(StyleBody,
				Span{Text: "Link:", Italic: true},
				Span{Text: " " + p.URL},
			)
		}
	}
	b.Spacer(Inch(cfg.SectionSpacing))
}
