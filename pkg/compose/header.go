package compose

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/resumeforge/resumeforge/pkg/resume"
)

// renderHeader emits the document header, always first in the sequence:
// the centered name, a contact line joined with " • ", and a links line
// with title-cased labels in document order.
func renderHeader(b *Builder, cfg *Config, doc *resume.Document) {
	p := doc.Personal
	b.Paragraph(StyleName, p.Name)

	var contact []string
	for _, part := range []string{p.Email, p.Phone, p.Location} {
		if part != "" {
			contact = append(contact, part)
		}
	}
	if len(contact) > 0 {
		b.Paragraph(StyleContact, strings.Join(contact, " • "))
	}

	if len(p.Links) > 0 {
		// Casers are stateful, so build one per call.
		caser := cases.Title(language.English)
		parts := make([]string, 0, len(p.Links))
		for _, link := range p.Links {
			parts = append(parts, fmt.Sprintf("%s: %s", caser.String(link.Label), link.URL))
		}
		b.Paragraph(StyleContact, strings.Join(parts, " • "))
	}

	b.Spacer(Inch(cfg.SectionSpacing))
}
