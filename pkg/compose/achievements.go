package compose

import (
	"strings"

	"github.com/resumeforge/resumeforge/pkg/resume"
)

// The certification, award, and publication sections are compact: entries
// are separated by a fixed gap instead of the configurable item spacing,
// and the section closes with a smaller fixed gap.

func renderCertifications(b *Builder, cfg *Config, doc *resume.Document) {
	entries := doc.Certifications
	if len(entries) == 0 {
		return
	}
	b.SectionHeader("CERTIFICATIONS")

	for _, c := range entries {
		if c.Name != "" {
			b.TitleRow(c.Name, c.Date)
		}
		if c.Issuer != "" {
			b.Paragraph(StyleItemSubtitle, c.Issuer)
		}
		if c.CredentialID != "" {
			b.Paragraph(StyleBody, "Credential ID: "+c.CredentialID)
		}
		b.Spacer(Inch(compactEntryGap))
	}
	b.Spacer(Inch(compactSectionGap))
}

func renderAwards(b *Builder, cfg *Config, doc *resume.Document) {
	entries := doc.Awards
	if len(entries) == 0 {
		return
	}
	b.SectionHeader("AWARDS & HONORS")

	for _, a := range entries {
		if a.Name != "" {
			b.TitleRow(a.Name, a.Date)
		}
		if a.Issuer != "" {
			b.Paragraph(StyleItemSubtitle, a.Issuer)
		}
		if a.Description != "" {
			b.Paragraph(StyleBody, a.Description)
		}
		b.Spacer(Inch(compactEntryGap))
	}
	b.Spacer(Inch(compactSectionGap))
}

// renderPublications emits publication entries: a bolded title line (no
// date column), the author list, an italic "venue, date" line, and a DOI
// line.
func renderPublications(b *Builder, cfg *Config, doc *resume.Document) {
	entries := doc.Publications
	if len(entries) == 0 {
		return
	}
	b.SectionHeader("PUBLICATIONS")

	for _, p := range entries {
		if p.Title != "" {
			b.Paragraph(StyleItemTitle, p.Title)
		}
		if len(p.Authors) > 0 {
			b.Paragraph(StyleBody, strings.Join(p.Authors, ", "))
		}
		var venue []string
		if p.Venue != "" {
			venue = append(venue, p.Venue)
		}
		if p.Date != "" {
			venue = append(venue, p.Date)
		}
		if len(venue) > 0 {
			b.Paragraph(StyleItemSubtitle, strings.Join(venue, ", "))
		}
		if p.DOI != "" {
			b.Paragraph(StyleBody, "DOI: "+p.DOI)
		}
		b.Spacer(Inch(compactEntryGap))
	}
	b.Spacer(Inch(compactSectionGap))
}
