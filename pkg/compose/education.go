package compose

import (
	"strings"

	"github.com/resumeforge/resumeforge/pkg/resume"
)

// renderEducation emits education entries. The title text combines degree
// and field ("<degree> in <field>") when both exist, else whichever is
// present; GPA and honors join into a single details line.
func renderEducation(b *Builder, cfg *Config, doc *resume.Document) {
	entries := doc.Education
	if len(entries) == 0 {
		return
	}
	b.SectionHeader("EDUCATION")

	for i, e := range entries {
		if i > 0 {
			b.Spacer(Inch(cfg.ItemSpacing))
		}

		title := e.Degree
		switch {
		case e.Degree != "" && e.Field != "":
			title = e.Degree + " in " + e.Field
		case e.Field != "":
			title = e.Field
		}
		if title != "" {
			b.TitleRow(title, FormatDateRange(e.StartDate, e.EndDate, e.Present))
		}

		if e.Institution != "" {
			b.Paragraph(StyleItemSubtitle, joinLocation(e.Institution, e.Location))
		}

		var details []string
		if e.GPA != "" {
			details = append(details, "GPA: "+e.GPA)
		}
		if e.Honors != "" {
			details = append(details, e.Honors)
		}
		if len(details) > 0 {
			b.Paragraph(StyleBody, strings.Join(details, " • "))
		}

		for _, h := range e.Highlights {
			b.Paragraph(StyleBody, "• "+h)
		}
	}
	b.Spacer(Inch(cfg.SectionSpacing))
}
