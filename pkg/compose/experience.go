package compose

import "github.com/resumeforge/resumeforge/pkg/resume"

// renderExperience emits the work history. Each entry gets a title/date row
// (when a title is present), a company • location subtitle, then optional
// description and bullet highlights, each preceded by a small fixed gap.
func renderExperience(b *Builder, cfg *Config, doc *resume.Document) {
	entries := doc.Experience
	if len(entries) == 0 {
		return
	}
	b.SectionHeader("PROFESSIONAL EXPERIENCE")

	for i, e := range entries {
		if i > 0 {
			b.Spacer(Inch(cfg.ItemSpacing))
		}
		if e.Title != "" {
			b.TitleRow(e.Title, FormatDateRange(e.StartDate, e.EndDate, e.Present))
		}
		if e.Company != "" {
			b.Paragraph(StyleItemSubtitle, joinLocation(e.Company, e.Location))
		}
		if e.Description != "" {
			b.Spacer(Inch(detailGap))
			b.Paragraph(StyleBody, e.Description)
		}
		if len(e.Highlights) > 0 {
			b.Spacer(Inch(detailGap))
			for _, h := range e.Highlights {
				b.Paragraph(StyleBody, "• "+h)
			}
		}
	}
	b.Spacer(Inch(cfg.SectionSpacing))
}

// renderVolunteer mirrors experience with role/organization fields; the
// organization subtitle carries no location suffix.
func renderVolunteer(b *Builder, cfg *Config, doc *resume.Document) {
	entries := doc.Volunteer
	if len(entries) == 0 {
		return
	}
	b.SectionHeader("VOLUNTEER EXPERIENCE")

	for i, v := range entries {
		if i > 0 {
			b.Spacer(Inch(cfg.ItemSpacing))
		}
		if v.Role != "" {
			b.TitleRow(v.Role, FormatDateRange(v.StartDate, v.EndDate, v.Present))
		}
		if v.Organization != "" {
			b.Paragraph(StyleItemSubtitle, v.Organization)
		}
		if v.Description != "" {
			b.Spacer(Inch(detailGap))
			b.Paragraph(StyleBody, v.Description)
		}
		if len(v.Highlights) > 0 {
			b.Spacer(Inch(detailGap))
			for _, h := range v.Highlights {
				b.Paragraph(StyleBody, "• "+h)
			}
		}
	}
	b.Spacer(Inch(cfg.SectionSpacing))
}
