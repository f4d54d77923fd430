package resume

import (
	"strings"

	"github.com/resumeforge/resumeforge/pkg/errors"
)

// Normalize collapses a decoded tree into the typed document. Flexible
// shapes become tagged variants, scalars are stringified for display, and
// blank highlight lines are dropped. The only hard requirement is a
// non-blank personal.name; everything else tolerates absence.
func Normalize(root *Mapping) (*Document, error) {
	doc := &Document{raw: root}

	pv, _ := root.Get("personal")
	pm, _ := pv.(*Mapping)
	doc.Personal = normalizePersonal(pm)
	if strings.TrimSpace(doc.Personal.Name) == "" {
		return nil, errors.New(errors.ErrCodeValidation, "personal.name is required")
	}

	if v, ok := root.Get("summary"); ok {
		doc.Summary = normalizeSummary(v)
	}
	if v, ok := root.Get("experience"); ok {
		doc.Experience = normalizeExperience(v)
	}
	if v, ok := root.Get("education"); ok {
		doc.Education = normalizeEducation(v)
	}
	if v, ok := root.Get("skills"); ok {
		doc.Skills = normalizeSkills(v)
	}
	if v, ok := root.Get("projects"); ok {
		doc.Projects = normalizeProjects(v)
	}
	if v, ok := root.Get("certifications"); ok {
		doc.Certifications = normalizeCertifications(v)
	}
	if v, ok := root.Get("awards"); ok {
		doc.Awards = normalizeAwards(v)
	}
	if v, ok := root.Get("publications"); ok {
		doc.Publications = normalizePublications(v)
	}
	if v, ok := root.Get("languages"); ok {
		doc.Languages = normalizeLanguages(v)
	}
	if v, ok := root.Get("volunteer"); ok {
		doc.Volunteer = normalizeVolunteer(v)
	}
	if v, ok := root.Get("config"); ok {
		if cm, ok := v.(*Mapping); ok {
			doc.Config = cm
		}
	}
	return doc, nil
}

// =============================================================================
// Field Helpers
// =============================================================================

// field stringifies a scalar field; containers and absence yield "".
func field(m *Mapping, key string) string {
	v, _ := m.Get(key)
	return Stringify(v)
}

// flag reads a boolean field, tolerating the string "true".
func flag(m *Mapping, key string) bool {
	v, _ := m.Get(key)
	switch x := v.(type) {
	case bool:
		return x
	case string:
		return strings.EqualFold(strings.TrimSpace(x), "true")
	default:
		return false
	}
}

// items returns v as a list, or nil when it is not one.
func items(v any) []any {
	list, _ := v.([]any)
	return list
}

// entryMappings returns the mapping-shaped elements of a section list.
// Anything else in the list is silently skipped.
func entryMappings(v any) []*Mapping {
	var out []*Mapping
	for _, item := range items(v) {
		if m, ok := item.(*Mapping); ok {
			out = append(out, m)
		}
	}
	return out
}

// stringList coerces a list or scalar into display strings: list elements
// are stringified individually, a bare scalar becomes a one-element list.
func stringList(v any) []string {
	if list := items(v); list != nil {
		var out []string
		for _, item := range list {
			if s := Stringify(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	if s := Stringify(v); s != "" {
		return []string{s}
	}
	return nil
}

// highlightList extracts the highlights field, dropping blank and
// whitespace-only lines.
func highlightList(m *Mapping) []string {
	v, _ := m.Get("highlights")
	var out []string
	for _, item := range items(v) {
		s := Stringify(item)
		if strings.TrimSpace(s) == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// locationField reads a location that may be a plain string or a structured
// {city, state, country} record.
func locationField(m *Mapping, key string) string {
	v, _ := m.Get(key)
	return normalizeLocation(v)
}

func normalizeLocation(v any) string {
	if m, ok := v.(*Mapping); ok {
		var parts []string
		for _, key := range []string{"city", "state", "country"} {
			if s := field(m, key); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	}
	return Stringify(v)
}

// =============================================================================
// Section Normalizers
// =============================================================================

func normalizePersonal(m *Mapping) Personal {
	p := Personal{
		Name:     field(m, "name"),
		Email:    field(m, "email"),
		Phone:    field(m, "phone"),
		Location: locationField(m, "location"),
	}
	if v, ok := m.Get("links"); ok {
		if lm, ok := v.(*Mapping); ok {
			for _, pair := range lm.Pairs {
				url := Stringify(pair.Value)
				if strings.TrimSpace(url) == "" {
					continue
				}
				p.Links = append(p.Links, Link{Label: pair.Key, URL: url})
			}
		}
	}
	return p
}

// normalizeSummary accepts a string or a list joined with spaces; any other
// shape yields "" and the section is skipped.
func normalizeSummary(v any) string {
	var text string
	switch x := v.(type) {
	case string:
		text = x
	case []any:
		var parts []string
		for _, item := range x {
			if s := Stringify(item); s != "" {
				parts = append(parts, s)
			}
		}
		text = strings.Join(parts, " ")
	default:
		return ""
	}
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return text
}

func normalizeExperience(v any) []Experience {
	var out []Experience
	for _, m := range entryMappings(v) {
		out = append(out, Experience{
			Title:       field(m, "title"),
			Company:     field(m, "company"),
			Location:    locationField(m, "location"),
			StartDate:   field(m, "start_date"),
			EndDate:     field(m, "end_date"),
			Present:     flag(m, "present"),
			Description: field(m, "description"),
			Highlights:  highlightList(m),
		})
	}
	return out
}

func normalizeEducation(v any) []Education {
	var out []Education
	for _, m := range entryMappings(v) {
		out = append(out, Education{
			Degree:      field(m, "degree"),
			Field:       field(m, "field"),
			Institution: field(m, "institution"),
			Location:    locationField(m, "location"),
			StartDate:   field(m, "start_date"),
			EndDate:     field(m, "end_date"),
			Present:     flag(m, "present"),
			GPA:         field(m, "gpa"),
			Honors:      field(m, "honors"),
			Highlights:  highlightList(m),
		})
	}
	return out
}

func normalizeSkills(v any) SkillSet {
	switch x := v.(type) {
	case []any:
		var flat []string
		for _, item := range x {
			if s := Stringify(item); s != "" {
				flat = append(flat, s)
			}
		}
		return SkillSet{Flat: flat}
	case *Mapping:
		var groups []SkillGroup
		for _, p := range x.Pairs {
			group := stringList(p.Value)
			if len(group) == 0 {
				continue
			}
			groups = append(groups, SkillGroup{Name: p.Key, Items: group})
		}
		return SkillSet{Groups: groups}
	default:
		return SkillSet{}
	}
}

func normalizeProjects(v any) []Project {
	var out []Project
	for _, m := range entryMappings(v) {
		tech, _ := m.Get("technologies")
		out = append(out, Project{
			Name:         field(m, "name"),
			Date:         field(m, "date"),
			Technologies: stringList(tech),
			Description:  field(m, "description"),
			Highlights:   highlightList(m),
			URL:          field(m, "url"),
		})
	}
	return out
}

func normalizeCertifications(v any) []Certification {
	var out []Certification
	for _, m := range entryMappings(v) {
		out = append(out, Certification{
			Name:         field(m, "name"),
			Issuer:       field(m, "issuer"),
			Date:         field(m, "date"),
			CredentialID: field(m, "credential_id"),
		})
	}
	return out
}

func normalizeAwards(v any) []Award {
	var out []Award
	for _, m := range entryMappings(v) {
		out = append(out, Award{
			Name:        field(m, "name"),
			Issuer:      field(m, "issuer"),
			Date:        field(m, "date"),
			Description: field(m, "description"),
		})
	}
	return out
}

func normalizePublications(v any) []Publication {
	var out []Publication
	for _, m := range entryMappings(v) {
		authors, _ := m.Get("authors")
		out = append(out, Publication{
			Title:   field(m, "title"),
			Authors: stringList(authors),
			Venue:   field(m, "venue"),
			Date:    field(m, "date"),
			DOI:     field(m, "doi"),
		})
	}
	return out
}

func normalizeLanguages(v any) LanguageList {
	switch x := v.(type) {
	case *Mapping:
		var levels []LanguageLevel
		for _, p := range x.Pairs {
			levels = append(levels, LanguageLevel{Name: p.Key, Level: Stringify(p.Value)})
		}
		return LanguageList{Levels: levels}
	case []any:
		var entries []LanguageEntry
		for _, item := range x {
			switch e := item.(type) {
			case *Mapping:
				name := field(e, "name")
				if name == "" {
					continue
				}
				entries = append(entries, LanguageEntry{Name: name, Level: field(e, "level")})
			default:
				if s := Stringify(item); s != "" {
					entries = append(entries, LanguageEntry{Name: s})
				}
			}
		}
		return LanguageList{Entries: entries}
	default:
		return LanguageList{}
	}
}

func normalizeVolunteer(v any) []Volunteer {
	var out []Volunteer
	for _, m := range entryMappings(v) {
		out = append(out, Volunteer{
			Role:         field(m, "role"),
			Organization: field(m, "organization"),
			StartDate:    field(m, "start_date"),
			EndDate:      field(m, "end_date"),
			Present:      flag(m, "present"),
			Description:  field(m, "description"),
			Highlights:   highlightList(m),
		})
	}
	return out
}
