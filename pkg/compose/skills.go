package compose

import (
	"strings"

	"github.com/resumeforge/resumeforge/pkg/resume"
)

// renderSkills emits the skills section. A flat list renders as one
// comma-joined line; categorized skills render one line per category in
// document order with a bold category lead-in.
func renderSkills(b *Builder, cfg *Config, doc *resume.Document) {
	s := doc.Skills
	if s.IsZero() {
		return
	}
	b.SectionHeader("SKILLS")

	if len(s.Groups) > 0 {
		for _, g := range s.Groups {
			b.Styled(StyleSkillItem,
				Span{Text: g.Name + ":", Bold: true},
				Span{Text: " " + strings.Join(g.Items, ", ")},
			)
		}
	} else {
		b.Paragraph(StyleSkillItem, strings.Join(s.Flat, ", "))
	}
	b.Spacer(Inch(cfg.SectionSpacing))
}

// renderLanguages emits the languages section. Mapping-form data renders as
// a single comma-joined line; list-form data renders one bullet per entry.
func renderLanguages(b *Builder, cfg *Config, doc *resume.Document) {
	l := doc.Languages
	if l.IsZero() {
		return
	}
	b.SectionHeader("LANGUAGES")

	if len(l.Levels) > 0 {
		parts := make([]string, 0, len(l.Levels))
		for _, lv := range l.Levels {
			parts = append(parts, languageText(lv.Name, lv.Level))
		}
		b.Paragraph(StyleSkillItem, strings.Join(parts, ", "))
	} else {
		for _, e := range l.Entries {
			b.Paragraph(StyleBody, "• "+languageText(e.Name, e.Level))
		}
	}
	b.Spacer(Inch(cfg.SectionSpacing))
}

// languageText renders "Name (Level)", omitting the parentheses when no
// level is known.
func languageText(name, level string) string {
	if level == "" {
		return name
	}
	return name + " (" + level + ")"
}
