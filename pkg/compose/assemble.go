package compose

import (
	"github.com/resumeforge/resumeforge/pkg/errors"
	"github.com/resumeforge/resumeforge/pkg/resume"
)

// FooterText is the attribution line appended when the footer is enabled.
const FooterText = "Generated with resumeforge"

// Fixed template gaps, in inches.
const (
	detailGap         = 0.03 // before descriptions and highlight lists
	compactEntryGap   = 0.04 // after certification/award/publication entries
	compactSectionGap = 0.03 // after the compact sections
	footerGap         = 0.2  // before the footer line
)

// renderFunc appends one section's blocks. Every renderer is a no-op when
// its section carries no data.
type renderFunc func(b *Builder, cfg *Config, doc *resume.Document)

// sectionRenderers is the static dispatch table from section names to
// renderers. Names outside this table are reported, never mis-dispatched.
var sectionRenderers = map[string]renderFunc{
	"summary":        renderSummary,
	"experience":     renderExperience,
	"education":      renderEducation,
	"skills":         renderSkills,
	"projects":       renderProjects,
	"certifications": renderCertifications,
	"awards":         renderAwards,
	"publications":   renderPublications,
	"languages":      renderLanguages,
	"volunteer":      renderVolunteer,
}

// Assemble builds the complete block sequence: header first, then the
// sections in configured order, then the optional footer.
//
// The returned issues are non-fatal UNKNOWN_SECTION warnings covering both
// section_order mismatches: an order entry naming no known section, and a
// section whose data the order never renders. The block sequence is valid
// either way.
func Assemble(doc *resume.Document, cfg *Config) ([]Block, []error) {
	b := NewBuilder()
	renderHeader(b, cfg, doc)

	var issues []error
	rendered := make(map[string]bool, len(cfg.SectionOrder))
	for _, name := range cfg.SectionOrder {
		fn, ok := sectionRenderers[name]
		if !ok {
			issues = append(issues, errors.New(errors.ErrCodeUnknownSection, "unknown section %q in section_order", name))
			continue
		}
		fn(b, cfg, doc)
		rendered[name] = true
	}

	for _, name := range resume.SectionNames {
		if doc.HasSection(name) && !rendered[name] {
			issues = append(issues, errors.New(errors.ErrCodeUnknownSection, "section %q has data but is missing from section_order", name))
		}
	}

	if cfg.Footer {
		b.Spacer(Inch(footerGap))
		b.Paragraph(StyleFooter, FooterText)
	}
	return b.Blocks(), issues
}

// Section builds the block sequence for a single named section, without the
// header or footer. The second return is false for names outside the
// dispatch table.
func Section(doc *resume.Document, cfg *Config, name string) ([]Block, bool) {
	fn, ok := sectionRenderers[name]
	if !ok {
		return nil, false
	}
	b := NewBuilder()
	fn(b, cfg, doc)
	return b.Blocks(), true
}

// joinLocation suffixes a subtitle with its location when one is present.
func joinLocation(primary, location string) string {
	if location == "" {
		return primary
	}
	return primary + " • " + location
}
