package resume

import (
	"encoding/json"
	"strings"
)

// SectionNames lists the canonical resume sections in their default display
// order. This is both the set of keys the assembler can dispatch on and the
// default value of the section_order configuration option.
var SectionNames = []string{
	"summary",
	"experience",
	"education",
	"skills",
	"projects",
	"certifications",
	"awards",
	"publications",
	"languages",
	"volunteer",
}

// =============================================================================
// Document
// =============================================================================

// Document is the fully normalized resume. It is built once by Load and
// never mutated afterwards.
type Document struct {
	Personal       Personal        `json:"personal"`
	Summary        string          `json:"summary,omitempty"`
	Experience     []Experience    `json:"experience,omitempty"`
	Education      []Education     `json:"education,omitempty"`
	Skills         SkillSet        `json:"skills,omitempty"`
	Projects       []Project       `json:"projects,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
	Awards         []Award         `json:"awards,omitempty"`
	Publications   []Publication   `json:"publications,omitempty"`
	Languages      LanguageList    `json:"languages,omitempty"`
	Volunteer      []Volunteer     `json:"volunteer,omitempty"`

	// Config is the raw, unresolved config sub-tree. Resolution against
	// defaults happens in the composition layer.
	Config *Mapping `json:"config,omitempty"`

	// raw is the decoded tree the document was normalized from, kept for
	// canonical marshaling. Nil for documents constructed directly in code.
	raw *Mapping
}

// MarshalCanonical returns the deterministic byte form of the document used
// for content hashing: the ordered JSON of the decoded tree when available,
// otherwise the JSON of the typed document.
func (d *Document) MarshalCanonical() ([]byte, error) {
	if d.raw != nil {
		return json.Marshal(d.raw)
	}
	return json.Marshal(d)
}

// HasSection reports whether the named section carries any renderable data.
func (d *Document) HasSection(name string) bool {
	switch name {
	case "summary":
		return d.Summary != ""
	case "experience":
		return len(d.Experience) > 0
	case "education":
		return len(d.Education) > 0
	case "skills":
		return !d.Skills.IsZero()
	case "projects":
		return len(d.Projects) > 0
	case "certifications":
		return len(d.Certifications) > 0
	case "awards":
		return len(d.Awards) > 0
	case "publications":
		return len(d.Publications) > 0
	case "languages":
		return !d.Languages.IsZero()
	case "volunteer":
		return len(d.Volunteer) > 0
	default:
		return false
	}
}

// OutputFilename derives the artifact name from the personal name: spaces
// become underscores, suffixed with "_resume.pdf".
func (d *Document) OutputFilename() string {
	name := d.Personal.Name
	if name == "" {
		name = "resume"
	}
	return strings.ReplaceAll(name, " ", "_") + "_resume.pdf"
}

// SectionsPresent returns the canonical names of every section with data,
// in canonical order.
func (d *Document) SectionsPresent() []string {
	var present []string
	for _, name := range SectionNames {
		if d.HasSection(name) {
			present = append(present, name)
		}
	}
	return present
}

// =============================================================================
// Personal
// =============================================================================

// Personal is the required identity block. Name is the only mandatory field
// in the whole document. Location is already display-normalized: structured
// {city, state, country} records collapse to "city, state, country".
type Personal struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Links    []Link `json:"links,omitempty"`
}

// Link is one named URL from the personal links mapping, in document order.
// Entries with empty URLs are dropped during normalization.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// =============================================================================
// Section Entries
// =============================================================================

// Experience is one work-history entry. Title triggers the title/date row.
type Experience struct {
	Title       string   `json:"title,omitempty"`
	Company     string   `json:"company,omitempty"`
	Location    string   `json:"location,omitempty"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
	Present     bool     `json:"present,omitempty"`
	Description string   `json:"description,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
}

// Education is one education entry. The title row triggers on the combined
// degree/field text.
type Education struct {
	Degree      string   `json:"degree,omitempty"`
	Field       string   `json:"field,omitempty"`
	Institution string   `json:"institution,omitempty"`
	Location    string   `json:"location,omitempty"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
	Present     bool     `json:"present,omitempty"`
	GPA         string   `json:"gpa,omitempty"`
	Honors      string   `json:"honors,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
}

// SkillSet is a tagged variant: exactly one of Flat or Groups is populated.
// A flat list renders as a single comma-joined line; groups render one line
// per category in document order.
type SkillSet struct {
	Flat   []string     `json:"flat,omitempty"`
	Groups []SkillGroup `json:"groups,omitempty"`
}

// IsZero reports whether the skill set carries no data.
func (s SkillSet) IsZero() bool {
	return len(s.Flat) == 0 && len(s.Groups) == 0
}

// SkillGroup is one named skill category.
type SkillGroup struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

// Project is one project entry. Name triggers the title/date row.
type Project struct {
	Name         string   `json:"name,omitempty"`
	Date         string   `json:"date,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Description  string   `json:"description,omitempty"`
	Highlights   []string `json:"highlights,omitempty"`
	URL          string   `json:"url,omitempty"`
}

// Certification is one certification entry.
type Certification struct {
	Name         string `json:"name,omitempty"`
	Issuer       string `json:"issuer,omitempty"`
	Date         string `json:"date,omitempty"`
	CredentialID string `json:"credential_id,omitempty"`
}

// Award is one award or honor entry.
type Award struct {
	Name        string `json:"name,omitempty"`
	Issuer      string `json:"issuer,omitempty"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
}

// Publication is one publication entry. Title triggers the bolded title line.
type Publication struct {
	Title   string   `json:"title,omitempty"`
	Authors []string `json:"authors,omitempty"`
	Venue   string   `json:"venue,omitempty"`
	Date    string   `json:"date,omitempty"`
	DOI     string   `json:"doi,omitempty"`
}

// LanguageList is a tagged variant: Levels comes from a name→level mapping
// (single-line rendering), Entries from a list (bulleted rendering). At most
// one is populated.
type LanguageList struct {
	Levels  []LanguageLevel `json:"levels,omitempty"`
	Entries []LanguageEntry `json:"entries,omitempty"`
}

// IsZero reports whether the language list carries no data.
func (l LanguageList) IsZero() bool {
	return len(l.Levels) == 0 && len(l.Entries) == 0
}

// LanguageLevel is one mapping-form language, in document order.
type LanguageLevel struct {
	Name  string `json:"name"`
	Level string `json:"level,omitempty"`
}

// LanguageEntry is one list-form language: a bare name, or a name with an
// optional proficiency level.
type LanguageEntry struct {
	Name  string `json:"name"`
	Level string `json:"level,omitempty"`
}

// Volunteer is one volunteer entry. Role triggers the title/date row.
type Volunteer struct {
	Role         string   `json:"role,omitempty"`
	Organization string   `json:"organization,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	Present      bool     `json:"present,omitempty"`
	Description  string   `json:"description,omitempty"`
	Highlights   []string `json:"highlights,omitempty"`
}
