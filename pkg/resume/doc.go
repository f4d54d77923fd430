// Package resume loads structured resume documents and normalizes them into
// a typed model the composition layer can render.
//
// # Overview
//
// A resume document is a key-value file (YAML, TOML, or JSON) with a required
// "personal" block, an optional "config" block, and any of ten named content
// sections:
//
//	personal:
//	  name: Ada Lovelace
//	  email: ada@example.com
//	experience:
//	  - title: Analyst
//	    company: Analytical Engines Ltd
//	    start_date: 1842
//	    present: true
//	skills:
//	  Languages: [Ada, Go]
//
// Loading happens in four stages:
//
//  1. Decode: the raw bytes are parsed into an ordered generic tree
//     (Mapping), preserving the document order of mapping keys. YAML and
//     JSON decode via yaml.v3 node walking; TOML recovers key order from
//     the decoder metadata.
//  2. Validate: the tree is checked against an embedded JSON Schema. The
//     schema is deliberately loose: it requires personal.name, types the
//     known sections, and allows unknown keys everywhere.
//  3. Normalize: the tree collapses into the typed Document. Flexible
//     shapes become tagged variants (SkillSet, LanguageList), scalars are
//     stringified, and blank highlight lines are dropped.
//  4. The caller receives a Document that is immutable for the rest of the
//     run.
//
// # Flexible Shapes
//
// Several sections accept more than one shape, normalized as follows:
//
//   - skills: a flat list ([]string) or a category mapping ([]SkillGroup,
//     document order preserved)
//   - languages: a name→level mapping ([]LanguageLevel) or an entry list
//     ([]LanguageEntry, each a bare name or a {name, level} record)
//   - summary: a string, or a list of strings joined with spaces
//   - location: a string, or a {city, state, country} record rendered as
//     "city, state, country"
//
// # Errors
//
// All failures carry structured codes from pkg/errors: NOT_FOUND for a
// missing input path, PARSE_ERROR for malformed input, VALIDATION_ERROR for
// an empty document, a missing personal.name, or a schema violation.
package resume
